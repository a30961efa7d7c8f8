package persistence

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies every pending up migration for the configured driver.
func RunMigrations(cfg config.DatabaseConfig, logger *zap.Logger) error {
	if cfg.DSN == "" {
		logger.Warn("no database configured; skipping migrations")
		return nil
	}

	migrator, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema up to date")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	version, _, _ := migrator.Version()
	logger.Info("migrations applied", zap.Uint("version", version))
	return nil
}

// RollbackMigrations reverts the given number of migrations; zero reverts all.
func RollbackMigrations(cfg config.DatabaseConfig, steps int, logger *zap.Logger) error {
	migrator, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	if steps > 0 {
		err = migrator.Steps(-steps)
	} else {
		err = migrator.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	logger.Info("migrations rolled back", zap.Int("steps", steps))
	return nil
}

func newMigrator(cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverPostgres
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("open migrations for %s: %w", driver, err)
	}

	databaseURL, err := migrationURL(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("init migrator failed: %w", err)
	}
	return migrator, nil
}

// migrationURL turns the runtime DSN into the URL form golang-migrate expects.
func migrationURL(driver, dsn string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
			return "", errors.New("postgres migrations require a URL-form DB_DSN (postgres://...)")
		}
		return dsn, nil
	case config.DriverMySQL:
		if !strings.HasPrefix(dsn, "mysql://") {
			dsn = "mysql://" + dsn
		}
		if !strings.Contains(dsn, "multiStatements=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "multiStatements=true"
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func closeMigrator(m *migrate.Migrate, logger *zap.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", zap.Error(srcErr))
	}
	if dbErr != nil {
		logger.Warn("close migration database", zap.Error(dbErr))
	}
}
