// Package sqlstore provides a SQL implementation of the storage.Store
// interface, backed by SQLite (pure Go driver) or PostgreSQL (pgx).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Dialect selects SQL syntax differences between backends.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Store implements storage.Store on database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
	pool    *pgxpool.Pool
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewSQLite creates a Store on the SQLite database at dbPath.
// It creates the parent directories and runs migrations automatically.
//
// Every connection enables foreign keys and waits on a busy database instead
// of failing; transactions take the write lock up front so two writers never
// interleave a read-modify-write.
func NewSQLite(dbPath string) (*Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := "file:" + dbPath +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(10000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return open(db, SQLite)
}

// NewPostgres creates a Store on the PostgreSQL database at databaseURL.
func NewPostgres(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is not set")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	s, err := open(stdlib.OpenDBFromPool(pool), Postgres)
	if err != nil {
		pool.Close()
		return nil, err
	}
	s.pool = pool
	return s, nil
}

func open(db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{db: db, dialect: dialect}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Dialect reports which backend the store talks to.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	err := s.db.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

// q rewrites ? placeholders into the backend's syntax.
func (s *Store) q(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// withTx runs fn inside a database transaction, committing only if fn succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// requireOwner fails with NotFound when the row is missing and with
// Ownership when it belongs to another user.
func (s *Store) requireOwner(ctx context.Context, q querier, table, entity, id, ownerID string) error {
	var owner string
	err := q.QueryRowContext(ctx, s.q("SELECT owner_id FROM "+table+" WHERE id = ?"), id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(entity, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s owner: %w", entity, err)
	}
	if owner != ownerID {
		return apperr.Ownership(entity, id)
	}
	return nil
}

// exists reports whether table has a row with the given id.
func (s *Store) exists(ctx context.Context, q querier, table, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, s.q("SELECT 1 FROM "+table+" WHERE id = ?"), id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}

// existingPersonIDs returns the subset of ids that name existing persons,
// preserving order.
func (s *Store) existingPersonIDs(ctx context.Context, q querier, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := q.QueryContext(ctx,
		s.q("SELECT id FROM persons WHERE id IN ("+placeholders(len(ids))+")"),
		stringArgs(ids)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up persons: %w", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan person id: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	var valid []string
	for _, id := range ids {
		if found[id] {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

// placeholders returns "?, ?, ?" with n markers, for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return "?" + strings.Repeat(", ?", n-1)
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// nullString stores "" as NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInt stores 0 as NULL.
func nullInt(i int64) any {
	if i == 0 {
		return nil
	}
	return i
}

// updateSet collects "column = ?" clauses for a partial update.
type updateSet struct {
	clauses []string
	args    []any
}

func (u *updateSet) add(column string, value any) {
	u.clauses = append(u.clauses, column+" = ?")
	u.args = append(u.args, value)
}

func (u *updateSet) empty() bool { return len(u.clauses) == 0 }

// exec runs UPDATE table SET ... WHERE id = ?.
func (u *updateSet) exec(ctx context.Context, s *Store, q querier, table, id string) error {
	if u.empty() {
		return nil
	}
	args := append(u.args, id)
	_, err := q.ExecContext(ctx,
		s.q("UPDATE "+table+" SET "+strings.Join(u.clauses, ", ")+" WHERE id = ?"),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}
