// internal/source/file.go
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shape-canvas/internal/logging"
	"shape-canvas/internal/shape"
)

// File reads a JSON array of shape records from disk on every call.
type File struct {
	Path string
}

func (f File) Shapes(ctx context.Context) ([]shape.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(f.Path)
}

// LoadFile reads a JSON array of shape records.
func LoadFile(path string) ([]shape.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shapes file: %w", err)
	}

	var recs []shape.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shapes file %s: %w", path, err)
	}

	logging.Logger().Debug("loaded shapes file", "path", path, "count", len(recs))
	return recs, nil
}
