package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"betaradar/internal/model"
)

// FileStore keeps the snapshot in a single JSON document. The whole
// document is overwritten on every save.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
}

// NewFileStore creates a file-backed repository.
func NewFileStore(filePath string) *FileStore {
	return &FileStore{filePath: filePath}
}

// Load reads the stored snapshot. A missing or empty file is an empty
// store, not an error; a corrupt file is logged and also treated as
// empty so one bad write cannot brick the aggregator.
func (fs *FileStore) Load() (model.AggregateResult, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return model.AggregateResult{}, nil
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to read store file: %v", err)
	}
	if len(data) == 0 {
		return model.AggregateResult{}, nil
	}

	var result model.AggregateResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("Store file %s is corrupt, starting from empty history: %v", fs.filePath, err)
		return model.AggregateResult{}, nil
	}
	return result, nil
}

// Save overwrites the snapshot on disk.
func (fs *FileStore) Save(result model.AggregateResult) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	if dir := filepath.Dir(fs.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store dir: %v", err)
		}
	}

	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %v", err)
	}
	return nil
}
