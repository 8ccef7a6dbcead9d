package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB wraps a dataset database connection
type DB struct {
	*sql.DB
	driver string
}

// DefaultDBPath returns the default SQLite dataset path (~/.ironplan/planning.db)
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ironplan", "planning.db"), nil
}

// Open connects to a SQLite file or a PostgreSQL URL for writing. The
// SQLite file and its directory are created when missing and the dataset
// tables are migrated. Only dataset exports use it.
func Open(driver, dsn string) (*DB, error) {
	if err := checkDriver(driver); err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := connect(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenExisting connects to an existing dataset for reading. It creates
// nothing and runs no DDL, so it works with read-only roles. A missing
// SQLite file is reported as an error wrapping os.ErrNotExist.
func OpenExisting(driver, dsn string) (*DB, error) {
	if err := checkDriver(driver); err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		info, err := os.Stat(dsn)
		if err != nil {
			return nil, fmt.Errorf("dataset database %s: %w", dsn, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("dataset database %s is a directory", dsn)
		}
	}

	return connect(driver, dsn)
}

func checkDriver(driver string) error {
	switch driver {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func connect(driver, dsn string) (*DB, error) {
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: sqlDB, driver: driver}, nil
}

// Driver returns the database/sql driver name
func (db *DB) Driver() string {
	return db.driver
}

// rebind rewrites ? placeholders as $n for PostgreSQL
func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
