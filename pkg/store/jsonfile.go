package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Collection is a JSON-array flat file holding every record of one
// collection. Each call re-reads the whole file and writes overwrite it
// whole; there is no locking and no atomic rename, so concurrent writers
// are last-write-wins. That matches the single-operator scale this store
// is built for.
type Collection[T any] struct {
	path   string
	logger *zap.Logger
}

// NewCollection opens the collection at path, creating the parent directory
// and an empty array file on first run.
func NewCollection[T any](path string, logger *zap.Logger) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize %s: %w", filepath.Base(path), err)
		}
	}

	return &Collection[T]{path: path, logger: logger}, nil
}

// Read returns every record in file order. A missing or corrupt file is
// logged and treated as an empty collection rather than surfaced.
func (c *Collection[T]) Read() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.logger.Error("failed to read collection", zap.String("path", c.path), zap.Error(err))
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Error("failed to parse collection", zap.String("path", c.path), zap.Error(err))
		return []T{}
	}

	if records == nil {
		records = []T{}
	}
	return records
}

// Write serializes the full collection and overwrites the file.
func (c *Collection[T]) Write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}

	return nil
}
