package analytics

import (
	"fmt"
	"sync"

	"github.com/adylai/lawyer-saas-ai-be/internal/shared/utils"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic aggregation jobs.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID
	jobsMux sync.Mutex
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	utils.LogInfo("analytics scheduler started", nil)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	utils.LogInfo("analytics scheduler stopped", nil)
}

// AddJob registers a named cron job, replacing any previous job with the
// same name.
func (s *Scheduler) AddJob(name, schedule string, job func()) error {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}

	entryID, err := s.cron.AddFunc(schedule, job)
	if err != nil {
		return fmt.Errorf("failed to add cron job %s: %w", name, err)
	}
	s.jobs[name] = entryID

	utils.LogInfo("scheduled analytics job", map[string]interface{}{
		"job":      name,
		"schedule": schedule,
	})
	return nil
}
