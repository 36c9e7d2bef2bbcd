// Package migrations holds the embedded SQL schema of the service, one
// directory per database dialect, applied with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// ErrUnknownDriver is returned for a driver without migrations.
var ErrUnknownDriver = errors.New("no migrations for driver")

// Migrate applies every pending migration for driver ("sqlite3" or "pgx").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "sqlite3":
		return goose.DialectSQLite3, "sqlite", nil
	case "pgx":
		return goose.DialectPostgres, "postgres", nil
	default:
		return "", "", fmt.Errorf("%w %q", ErrUnknownDriver, driver)
	}
}
