package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"campaign-manager/migrations"
)

// Migrator applies the embedded SQL migrations to a PostgreSQL database.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a lib/pq connection to addr and prepares the embedded
// migration source. Close releases the source and the connection.
func NewMigrator(addr string) (*Migrator, error) {
	sqlDB, err := sql.Open("postgres", addr)
	if err != nil {
		return nil, err
	}
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = driver.Close()
		return nil, err
	}
	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return nil, err
	}
	return &Migrator{m: mg}, nil
}

// Up migrates to migrations.Version. A dirty database is refused.
func (m *Migrator) Up() error {
	_, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}
	if err = m.m.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Version returns the applied schema version, 0 for an empty database.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Migrate applies all up migrations to the database at addr.
func Migrate(addr string) error {
	m, err := NewMigrator(addr)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
