package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// migrations holds one directory of numbered .sql files per dialect.
// Each file runs at most once; applied names are recorded in schema_migrations.
//
//go:embed migrations
var migrations embed.FS

const migrationTable = "schema_migrations"

// runMigrations applies every pending migration for the store's dialect.
func (s *Store) runMigrations() error {
	ctx := context.Background()

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at BIGINT NOT NULL
)`, migrationTable)
	if _, err := s.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	root := path.Join("migrations", string(s.dialect))
	entries, err := fs.ReadDir(migrations, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		name := path.Join(string(s.dialect), file)

		var count int
		if err := s.db.QueryRowContext(ctx,
			s.q("SELECT COUNT(*) FROM "+migrationTable+" WHERE name = ?"), name,
		).Scan(&count); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrations, path.Join(root, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		err = s.withTx(ctx, func(tx *sql.Tx) error {
			for _, stmt := range splitStatements(string(content)) {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("exec migration %s: %w", name, err)
				}
			}
			_, err := tx.ExecContext(ctx,
				s.q("INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?) ON CONFLICT DO NOTHING"),
				name, time.Now().Unix(),
			)
			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// splitStatements breaks a migration file on semicolons, dropping comment-only
// and empty statements. Migration files never contain literal semicolons.
func splitStatements(content string) []string {
	var stmts []string
	for _, raw := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
