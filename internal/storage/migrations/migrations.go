package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Result reports the schema version before and after a run.
type Result struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Up applies every pending migration to db.
func Up(db *sql.DB) (Result, error) {
	var result Result

	source, err := iofs.New(files, ".")
	if err != nil {
		return result, fmt.Errorf("migrations: open source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return result, fmt.Errorf("migrations: postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return result, fmt.Errorf("migrations: migrate.NewWithInstance: %w", err)
	}

	result.PreMigrationVersion, err = version(m)
	if err != nil {
		return result, fmt.Errorf("migrations: preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("migrations: up: %w", err)
	}

	result.PostMigrationVersion, err = version(m)
	if err != nil {
		return result, fmt.Errorf("migrations: postMigrationVersion: %w", err)
	}

	return result, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, nil
}
