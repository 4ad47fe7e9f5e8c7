package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/httpfs"
)

// MigrationAction selects the direction Migrate runs in.
type MigrationAction int

const (
	// MigrateUp brings the schema up to the latest revision.
	MigrateUp MigrationAction = iota
	// MigrateDn drops the schema back down to empty.
	MigrateDn
)

var (
	//go:embed migrations
	migrations embed.FS

	ErrDBConnect = errors.New("db connect error")
	ErrMigrate   = errors.New("failed to migrate db schema")
)

// Open connects to the notification history database, creating it on first
// use. An empty path opens a throwaway in-memory database.
func Open(ctx context.Context, path string, autoMigrate bool) (*sql.DB, error) {
	memory := path == ""
	if memory {
		path = ":memory:"
	}

	path += "?cache=private"
	connection, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(err, ErrDBConnect)
	}

	// The history workload is one writer appending rows with an occasional
	// reader, so a small pool is plenty.
	connection.SetMaxOpenConns(4)
	connection.SetMaxIdleConns(2)

	// Every pooled connection to a private in-memory database is a separate
	// empty database, so pin the pool to one.
	if memory {
		connection.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, errPragma := connection.ExecContext(ctx, pragma); errPragma != nil {
			return nil, errors.Join(errPragma, ErrDBConnect)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if errPing := connection.PingContext(pingCtx); errPing != nil {
		connection.Close()

		return nil, errors.Join(errPing, ErrDBConnect)
	}

	if autoMigrate {
		if errMigrate := Migrate(connection, MigrateUp); errMigrate != nil {
			return nil, errors.Join(errMigrate, ErrDBConnect)
		}
	}

	return connection, nil
}

func Migrate(conn *sql.DB, action MigrationAction) error {
	driver, errDriver := sqlite.WithInstance(conn, &sqlite.Config{})
	if errDriver != nil {
		return errors.Join(errDriver, ErrMigrate)
	}

	source, errSource := httpfs.New(http.FS(migrations), "migrations")
	if errSource != nil {
		return errors.Join(errSource, ErrMigrate)
	}

	migrator, errMigrator := migrate.NewWithInstance("httpfs", source, "sqlite", driver)
	if errMigrator != nil {
		return errors.Join(errMigrator, ErrMigrate)
	}

	var errMigration error
	if action == MigrateDn {
		errMigration = migrator.Down()
	} else {
		errMigration = migrator.Up()
	}

	if errMigration != nil && !errors.Is(errMigration, migrate.ErrNoChange) {
		return errors.Join(errMigration, ErrMigrate)
	}

	return nil
}
