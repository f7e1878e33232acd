package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"jencrm_backend/internal/config"
)

// Connect opens a PostgreSQL connection pool and verifies connectivity.
// The returned handle is safe for concurrent use and is injected into
// every repository; there is no package-level singleton.
func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

// Status is the result of a connectivity health check.
type Status struct {
	Healthy bool
	Reason  string
}

// HealthCheck issues a trivial round-trip query against the pool.
// It never returns an error; failures are reported in the Status.
func HealthCheck(ctx context.Context, db *sql.DB) Status {
	if _, err := db.ExecContext(ctx, "SELECT 1"); err != nil {
		return Status{Healthy: false, Reason: err.Error()}
	}
	return Status{Healthy: true}
}
