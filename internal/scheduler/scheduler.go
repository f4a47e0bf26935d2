// Package scheduler triggers periodic pipeline refreshes.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"betaradar/internal/pipeline"
)

type Scheduler struct {
	cron     *cron.Cron
	pipeline *pipeline.Pipeline
	entryID  cron.EntryID
}

func New(p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		pipeline: p,
	}
}

// Start schedules the refresh job. The spec string follows robfig/cron
// syntax, e.g. "@every 1h".
func (s *Scheduler) Start(spec string) error {
	id, err := s.cron.AddFunc(spec, func() {
		log.Println("[Cron] Refreshing news...")
		if _, err := s.pipeline.Run(context.Background()); err != nil {
			log.Printf("[Cron] Refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.entryID = id

	s.cron.Start()
	log.Printf("[Cron] Scheduler started (%s)", spec)
	return nil
}

// NextRun returns the next scheduled refresh time.
func (s *Scheduler) NextRun() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
