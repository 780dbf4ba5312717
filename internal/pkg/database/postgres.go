package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"github.com/piresc/intercity/internal/pkg/models"
)

const driverName = "pgx"

// PostgresClient represents a PostgreSQL connection pool
type PostgresClient struct {
	db *sqlx.DB
}

// BuildDSN returns the connection string for config. An explicit URL wins.
func BuildDSN(config models.DatabaseConfig) string {
	if config.URL != "" {
		return config.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.Username, config.Password),
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/" + config.Database,
	}
	q := u.Query()
	if config.SSLMode != "" {
		q.Set("sslmode", config.SSLMode)
	}
	if config.ConnectTimeout > 0 {
		secs := int(config.ConnectTimeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", fmt.Sprint(secs))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPostgresClient opens the pool and verifies it within the connect timeout
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	db, err := sqlx.Open(driverName, BuildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	if config.IdleTimeout > 0 {
		db.SetConnMaxIdleTime(config.IdleTimeout)
	}
	db.SetConnMaxLifetime(time.Hour)

	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresClient{db: db}, nil
}

// GetDB returns the underlying pool
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
