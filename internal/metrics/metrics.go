// Package metrics tracks per-run pipeline telemetry for /api/status.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ItemsFetched      int64
	SourceFailures    int64
	DuplicatesSkipped int64
	ItemsDropped      int64
	ImagesBackfilled  int64
	TranslationsOK    int64
	TranslationsFail  int64

	// Run telemetry
	RunCount        int64
	LastRunTime     time.Time
	LastRunDuration time.Duration
	LastError       string
	LastErrorTime   time.Time
	IsHealthy       bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsFetched += int64(n)
}

func (m *Metrics) IncrementSourceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFailures++
}

func (m *Metrics) AddDuplicatesSkipped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesSkipped += int64(n)
}

func (m *Metrics) AddDropped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsDropped += int64(n)
}

func (m *Metrics) IncrementImagesBackfilled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImagesBackfilled++
}

func (m *Metrics) IncrementTranslationsOK() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsOK++
}

func (m *Metrics) IncrementTranslationsFail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsFail++
}

// RecordRun marks a completed pipeline run.
func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunCount++
	m.LastRunTime = time.Now()
	m.LastRunDuration = duration
	m.IsHealthy = true
}

// SetError records a failed run.
func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

// GetStats returns a snapshot for the status endpoint.
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"items_fetched":        m.ItemsFetched,
		"source_failures":      m.SourceFailures,
		"duplicates_skipped":   m.DuplicatesSkipped,
		"items_dropped":        m.ItemsDropped,
		"images_backfilled":    m.ImagesBackfilled,
		"translations_ok":      m.TranslationsOK,
		"translations_failed":  m.TranslationsFail,
		"run_count":            m.RunCount,
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}
