// Package store persists the aggregate snapshot and implements the
// dedup/merge semantics of the history.
package store

import (
	"fmt"

	"betaradar/internal/model"
)

// Repository loads and saves whole snapshots. Alternative backends
// plug in here; the pipeline never touches the filesystem directly.
type Repository interface {
	Load() (model.AggregateResult, error)
	Save(result model.AggregateResult) error
}

// Open creates the repository backend selected by config.
func Open(backend, path string) (Repository, error) {
	switch backend {
	case "file", "":
		return NewFileStore(path), nil
	case "sqlite":
		return NewGormStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
