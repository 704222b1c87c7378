package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the subset of *sqlx.DB the migration runner needs.
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrator applies the embedded up migrations in version order and records
// each applied version in schema_migrations. golang-migrate ships no Oracle
// database driver, so only its source side is used here.
type Migrator struct {
	db     DB
	source source.Driver
	logger *zap.Logger
}

// NewMigrator reads migrations from the embedded migrations directory.
func NewMigrator(db DB, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	return &Migrator{db: db, source: src, logger: logger}, nil
}

// Close releases the migration source.
func (m *Migrator) Close() error {
	return m.source.Close()
}

// Up applies every migration not yet recorded and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}

	version, err := m.source.First()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("could not read first migration: %w", err)
	}

	applied := 0
	for {
		ran, err := m.apply(ctx, version)
		if err != nil {
			return applied, err
		}
		if ran {
			applied++
		}

		next, err := m.source.Next(version)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				break
			}
			return applied, fmt.Errorf("could not read migration after %d: %w", version, err)
		}
		version = next
	}

	m.logger.Info("Migrations completed successfully", zap.Int("applied", applied))
	return applied, nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (
		version    NUMBER(19) PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, version uint) (bool, error) {
	var count int
	if err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM schema_migrations WHERE version = :1`, version); err != nil {
		return false, fmt.Errorf("could not check migration %d: %w", version, err)
	}
	if count > 0 {
		return false, nil
	}

	r, identifier, err := m.source.ReadUp(version)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("could not read migration %d: %w", version, err)
	}
	body, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return false, fmt.Errorf("could not read migration %d: %w", version, err)
	}

	for _, stmt := range splitStatements(string(body)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}
	if _, err := m.db.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES (:1)`, version); err != nil {
		return false, fmt.Errorf("could not record migration %d: %w", version, err)
	}

	m.logger.Info("Executed migration", zap.Uint("version", version), zap.String("name", identifier))
	return true, nil
}

// splitStatements breaks a script on statement-terminating semicolons.
// The Oracle driver executes one statement per call and rejects the trailing ';'.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
