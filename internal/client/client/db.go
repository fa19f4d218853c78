package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/awardkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/awardkeeper/internal/filex"
	"github.com/gofrs/flock"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Database is the console's local SQLite database. It holds an exclusive
// file lock for its whole lifetime so that two consoles never share one
// upload registry.
type Database struct {
	*sql.DB
	lock *flock.Flock
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// InitDatabase locks path+".lock", opens the database at path and brings its
// schema up to date. It fails with ErrDatabaseLocked when another console
// holds the lock.
func InitDatabase(ctx context.Context, path string) (*Database, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("database dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseLocked, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &Database{DB: db, lock: lock}, nil
}

// Close closes the database and releases the lock.
func (d *Database) Close() error {
	err := d.DB.Close()
	if uerr := d.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}
