package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// newMigrate builds a migrator over its own connection; closing the
// migrator closes that connection.
func newMigrate(dbPath string) (*migrate.Migrate, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return nil, fmt.Errorf("migrations driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return m, nil
}

// RunMigrations applies all embedded up migrations to the database at path.
func RunMigrations(dbPath string) error {
	m, err := newMigrate(dbPath)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// SchemaVersion reports the applied migration version; ok is false on a
// database that was never migrated.
func SchemaVersion(dbPath string) (version uint, ok bool, err error) {
	m, err := newMigrate(dbPath)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if dirty {
		return v, true, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, true, nil
}
