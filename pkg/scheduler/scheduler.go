package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"seo-backoffice/pkg/logger"
)

// JobScheduler runs named cron jobs. A job never overlaps with itself.
type JobScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	RemoveJob(id string) error
	GetJob(id string) (*JobInfo, bool)
	ListJobs() map[string]*JobInfo
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  *time.Time
	Runs     int
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*entry
	mu        sync.RWMutex
	running   bool
}

type entry struct {
	info JobInfo
	job  *gocron.Job
}

func NewJobScheduler() *GocronScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*entry),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Job scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Job scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		now := time.Now().UTC()
		logger.Info("Executing job", "job", id, "at", now.Format(time.RFC3339))

		s.mu.Lock()
		if e, ok := s.jobs[id]; ok {
			e.info.LastRun = &now
			e.info.Runs++
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}

	s.jobs[id] = &entry{
		info: JobInfo{ID: id, CronExpr: cronExpr},
		job:  job,
	}
	logger.Info("Job added", "job", id, "cron", cronExpr)
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}
	s.scheduler.RemoveByReference(e.job)
	delete(s.jobs, id)
	logger.Info("Job removed", "job", id)
	return nil
}

func (s *GocronScheduler) GetJob(id string) (*JobInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.jobs[id]
	if !exists {
		return nil, false
	}
	return snapshot(e), true
}

func (s *GocronScheduler) ListJobs() map[string]*JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make(map[string]*JobInfo, len(s.jobs))
	for id, e := range s.jobs {
		jobs[id] = snapshot(e)
	}
	return jobs
}

// snapshot คืนสำเนา ไม่ให้ caller แก้ state ภายในได้
func snapshot(e *entry) *JobInfo {
	info := e.info
	if e.info.LastRun != nil {
		lastRun := *e.info.LastRun
		info.LastRun = &lastRun
	}
	if e.job != nil {
		if next := e.job.NextRun(); !next.IsZero() {
			info.NextRun = &next
		}
	}
	return &info
}

// ValidateCronExpression parses cronExpr without scheduling anything.
func ValidateCronExpression(cronExpr string) error {
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Cron(cronExpr).Do(func() {}); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return nil
}
