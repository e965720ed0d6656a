package kvstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus reports the schema version before and after a run.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// MigratePostgres applies the embedded postgres migrations to db.
func MigratePostgres(db *sql.DB) (MigrationStatus, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("postgres.WithInstance: %w", err)
	}
	return runMigrations("migrations/postgres", "postgres", driver)
}

// MigrateSQLite applies the embedded sqlite migrations to db.
func MigrateSQLite(db *sql.DB) (MigrationStatus, error) {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("sqlite.WithInstance: %w", err)
	}
	return runMigrations("migrations/sqlite", "sqlite", driver)
}

func runMigrations(dir, databaseName string, driver database.Driver) (MigrationStatus, error) {
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}

	status := MigrationStatus{}
	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("m.Up: %w", err)
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return status, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"database":             databaseName,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Debug("Migration status")

	return status, nil
}
