package database

import (
	"embed"
	"errors"
	"fmt"

	"taskboard/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator runs the embedded schema migrations on their own connection so
// closing it never affects the gorm pool.
type Migrator struct {
	driver string
	url    string
}

func NewMigrator(cfg *config.Config) *Migrator {
	if cfg.DBDriver == config.DriverSQLite {
		return &Migrator{driver: "sqlite3", url: "sqlite3://" + SQLiteDSN(cfg.SQLitePath)}
	}
	return &Migrator{driver: "postgres", url: cfg.PostgresURL()}
}

// Up runs all pending migrations.
func (m *Migrator) Up() error {
	mig, err := m.open()
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Down rolls back the last migration.
func (m *Migrator) Down() error {
	mig, err := m.open()
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	return nil
}

// Version returns the current schema version and whether it is dirty.
func (m *Migrator) Version() (uint, bool, error) {
	mig, err := m.open()
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(mig)

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+m.driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.url)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrate(m *migrate.Migrate) {
	_, _ = m.Close()
}
