package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
)

var _ QueryExecutor = (*Postgres)(nil)

// ErrNotConnected is returned by executors created without a DSN.
var ErrNotConnected = errors.New("database not configured")

// Postgres wraps access to a pgx connection pool.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool when DSN is provided.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		logger.Warn("DB_DSN not provided; skipping database connection")
		return &Postgres{Pool: nil}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{Pool: pool}, nil
}

// Query runs a row-returning statement.
func (p *Postgres) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if p == nil || p.Pool == nil {
		return nil, ErrNotConnected
	}
	rows, err := p.Pool.Query(ctx, rebindDollar(sql), args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec runs a statement and reports the affected row count.
func (p *Postgres) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	if p == nil || p.Pool == nil {
		return 0, ErrNotConnected
	}
	cmd, err := p.Pool.Exec(ctx, rebindDollar(sql), args...)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// Ping verifies connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return ErrNotConnected
	}
	return p.Pool.Ping(ctx)
}

// Close releases pool resources.
func (p *Postgres) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
