package store

import (
	"context"
	"fmt"

	"github.com/existflow/ironplan/internal/db"
	"github.com/existflow/ironplan/internal/model"
)

// Export writes d to path as a file that the yaml or sqlite driver can load
func Export(ctx context.Context, format, path string, d model.Dataset) error {
	switch format {
	case DriverYAML:
		return WriteYAML(path, d)
	case DriverSQLite:
		conn, err := db.Open(db.DriverSQLite, path)
		if err != nil {
			return err
		}
		defer func() {
			_ = conn.Close()
		}()
		return conn.ReplaceDataset(ctx, d)
	default:
		return fmt.Errorf("%w: cannot export to %q", ErrUnknownDriver, format)
	}
}
