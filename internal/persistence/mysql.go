package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
)

var _ QueryExecutor = (*MySQL)(nil)

// MySQL wraps a database/sql pool opened with the go-sql-driver driver.
type MySQL struct {
	DB *sql.DB
}

// NewMySQL opens and pings a MySQL pool when DSN is provided. The DSN uses the
// driver's native form, e.g. user:pass@tcp(localhost:3306)/ssm.
func NewMySQL(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*MySQL, error) {
	if cfg.DSN == "" {
		logger.Warn("DB_DSN not provided; skipping database connection")
		return &MySQL{DB: nil}, nil
	}

	driverCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	driverCfg.ParseTime = true

	connector, err := mysql.NewConnector(driverCfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}
	if cfg.MinConns > 0 {
		db.SetMaxIdleConns(int(cfg.MinConns))
	}
	if cfg.ConnMaxIdleSec > 0 {
		db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleSec) * time.Second)
	}
	if cfg.ConnMaxLifeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("connected to mysql", zap.String("addr", driverCfg.Addr), zap.String("db", driverCfg.DBName))
	return &MySQL{DB: db}, nil
}

// Query runs a row-returning statement.
func (m *MySQL) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if m == nil || m.DB == nil {
		return nil, ErrNotConnected
	}
	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

// Exec runs a statement and reports the affected row count.
func (m *MySQL) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if m == nil || m.DB == nil {
		return 0, ErrNotConnected
	}
	res, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping verifies connectivity.
func (m *MySQL) Ping(ctx context.Context) error {
	if m == nil || m.DB == nil {
		return ErrNotConnected
	}
	return m.DB.PingContext(ctx)
}

// Close releases pool resources.
func (m *MySQL) Close() {
	if m != nil && m.DB != nil {
		_ = m.DB.Close()
	}
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}
