package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/existflow/ironplan/internal/db"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/model"
)

// Dataset source drivers
const (
	DriverBuiltin  = "builtin"
	DriverYAML     = "yaml"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverHTTP     = "http"
)

// ErrUnknownDriver is returned by Open for a driver it does not know
var ErrUnknownDriver = errors.New("unknown dataset driver")

// Source yields the dataset a session starts from. It is read exactly once.
type Source interface {
	Load(ctx context.Context) (model.Dataset, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) (model.Dataset, error)

// Load calls f
func (f SourceFunc) Load(ctx context.Context) (model.Dataset, error) {
	return f(ctx)
}

// Drivers lists the accepted driver names
func Drivers() []string {
	return []string{DriverBuiltin, DriverYAML, DriverSQLite, DriverPostgres, DriverHTTP}
}

// Open returns the source for driver. dsn is a file path for yaml and sqlite,
// a connection URL for postgres and a base URL for http; builtin ignores it.
// sqlite falls back to ~/.ironplan/planning.db when dsn is empty.
func Open(driver, dsn string) (Source, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver == "" {
		driver = DriverBuiltin
	}
	if !slices.Contains(Drivers(), driver) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDriver, driver, strings.Join(Drivers(), ", "))
	}

	if driver == DriverSQLite && dsn == "" {
		path, err := db.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dsn = path
	}
	if driver != DriverBuiltin && dsn == "" {
		return nil, fmt.Errorf("dataset driver %s needs a dsn", driver)
	}

	switch driver {
	case DriverYAML:
		return yamlSource{path: dsn}, nil
	case DriverSQLite:
		return sqlSource{driver: db.DriverSQLite, dsn: dsn}, nil
	case DriverPostgres:
		return sqlSource{driver: db.DriverPostgres, dsn: dsn}, nil
	case DriverHTTP:
		return newRemoteSource(dsn), nil
	default:
		return SourceFunc(func(context.Context) (model.Dataset, error) {
			return Sample(), nil
		}), nil
	}
}

// Load reads src, validates the records and indexes them
func Load(ctx context.Context, src Source) (*Catalog, error) {
	d, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	logger.Info("Dataset loaded",
		logger.F("employees", len(d.Employees)),
		logger.F("tasks", len(d.Tasks)))
	return NewCatalog(d), nil
}

// OpenCatalog is Open followed by Load
func OpenCatalog(ctx context.Context, driver, dsn string) (*Catalog, error) {
	src, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return Load(ctx, src)
}

// sqlSource reads a dataset from SQLite or PostgreSQL
type sqlSource struct {
	driver string
	dsn    string
}

func (s sqlSource) Load(ctx context.Context) (model.Dataset, error) {
	conn, err := db.OpenExisting(s.driver, s.dsn)
	if err != nil {
		return model.Dataset{}, err
	}
	defer func() {
		_ = conn.Close()
	}()
	return conn.LoadDataset(ctx)
}
