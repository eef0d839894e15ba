package task

import (
	"github.com/blues/pts/internal/config"
	"github.com/blues/pts/internal/logger"
	"github.com/blues/pts/internal/repository"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// TaskManager owns the background job scheduler.
type TaskManager struct {
	scheduler gocron.Scheduler
	db        *gorm.DB
	config    *config.Config
}

func NewTaskManager(db *gorm.DB, cfg *config.Config) *TaskManager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &TaskManager{
		scheduler: s,
		db:        db,
		config:    cfg,
	}
}

// Start registers all jobs and starts the scheduler.
func Start(db *gorm.DB, cfg *config.Config) *TaskManager {
	manager := NewTaskManager(db, cfg)
	manager.RegisterJobs()
	manager.scheduler.Start()
	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs registers every background job.
func (m *TaskManager) RegisterJobs() {
	m.RegisterTokenPurgeJob()
}

// RegisterTokenPurgeJob registers the refresh-token purge job.
func (m *TaskManager) RegisterTokenPurgeJob() {
	job := NewTokenPurgeJob(repository.NewTokenRepo(m.db), m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop shuts the scheduler down.
func (m *TaskManager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
