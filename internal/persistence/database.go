package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
)

// Database is a QueryExecutor that owns its pool.
type Database interface {
	QueryExecutor
	Close()
}

// Open connects to the configured driver.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (Database, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		pg, err := NewPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pg, nil
	case config.DriverMySQL:
		my, err := NewMySQL(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return my, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
