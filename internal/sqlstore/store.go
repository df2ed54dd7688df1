// Package sqlstore implements the benchmark ports against a relational
// MySQL schema using database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
)

type Store struct {
	*sql.DB
}

// Open creates a new database connection using the provided config.
// The DSN must carry parseTime=true so DATETIME columns scan into time.Time.
func Open(cfg *config.SQLConfig) (*Store, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db}, nil
}

// HealthCheck performs a simple health check on the database
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.PingContext(ctx)
}
