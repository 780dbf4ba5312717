package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
)

// ErrNotInitialized is returned by GetDatabase before Init succeeded
var ErrNotInitialized = errors.New("database not initialized")

var (
	mu       sync.Mutex
	instance *DB
	client   *PostgresClient
)

// Init creates the process-wide pool once. Later calls return the same DB.
func Init(config models.DatabaseConfig) (*DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	c, err := NewPostgresClient(config)
	if err != nil {
		return nil, err
	}
	client = c
	instance = NewDB(c.GetDB(), config.QueryTimeout)
	return instance, nil
}

// GetDatabase returns the initialized DB or ErrNotInitialized
func GetDatabase() (*DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}

// Close releases the process-wide pool
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	instance = nil
	return err
}

// DB runs parameterized statements against the pool or, inside
// Transaction, against the transaction's connection.
type DB struct {
	conn         sqlx.ExtContext
	root         *sqlx.DB
	queryTimeout time.Duration
}

// NewDB wraps a pool. A zero queryTimeout disables per-statement deadlines.
func NewDB(db *sqlx.DB, queryTimeout time.Duration) *DB {
	return &DB{conn: db, root: db, queryTimeout: queryTimeout}
}

// InTransaction reports whether statements run inside a transaction
func (d *DB) InTransaction() bool {
	return d.root == nil
}

func (d *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.queryTimeout)
}

func (d *DB) logQuery(ctx context.Context, query string, start time.Time, rows int64, err error) {
	fields := []logger.Field{
		logger.String("query", query),
		logger.Int64("duration_ms", time.Since(start).Milliseconds()),
		logger.Int64("rows", rows),
		logger.Bool("tx", d.InTransaction()),
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorCtx(ctx, "Query failed", append(fields, logger.Err(err))...)
		return
	}
	logger.DebugCtx(ctx, "Executed query", fields...)
}

// Select runs query and scans every row into dest, a pointer to a slice
func (d *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	qctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err := sqlx.SelectContext(qctx, d.conn, dest, query, args...)

	var rows int64
	if err == nil {
		if v := reflect.ValueOf(dest); v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Slice {
			rows = int64(v.Elem().Len())
		}
	}
	d.logQuery(ctx, query, start, rows, err)
	return err
}

// Get runs query and scans the single resulting row into dest.
// It returns sql.ErrNoRows when nothing matched.
func (d *DB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	qctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err := sqlx.GetContext(qctx, d.conn, dest, query, args...)

	var rows int64
	if err == nil {
		rows = 1
	}
	d.logQuery(ctx, query, start, rows, err)
	return err
}

// Exec runs a statement and returns the number of affected rows
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	qctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := d.conn.ExecContext(qctx, query, args...)
	if err != nil {
		d.logQuery(ctx, query, start, 0, err)
		return 0, err
	}

	rows, err := res.RowsAffected()
	d.logQuery(ctx, query, start, rows, err)
	return rows, err
}

// Transaction runs fn inside a single transaction. It commits when fn
// returns nil. Otherwise it logs fn's error, rolls back and returns the
// error unchanged.
// Nested calls reuse the outer transaction.
func (d *DB) Transaction(ctx context.Context, fn func(tx *DB) error) (err error) {
	if d.InTransaction() {
		return fn(d)
	}

	tx, err := d.root.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txDB := &DB{conn: tx, queryTimeout: d.queryTimeout}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(txDB); err != nil {
		logger.ErrorCtx(ctx, "Transaction failed, rolling back", logger.Err(err))
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorCtx(ctx, "Failed to rollback transaction", logger.Err(rbErr))
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// In expands slice arguments of an IN (?) query and rebinds it to $n placeholders
func In(query string, args ...interface{}) (string, []interface{}, error) {
	q, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand query: %w", err)
	}
	return sqlx.Rebind(sqlx.DOLLAR, q), expanded, nil
}
