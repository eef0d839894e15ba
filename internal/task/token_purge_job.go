package task

import (
	"time"

	"github.com/blues/pts/internal/config"
	"github.com/blues/pts/internal/logger"
	"github.com/blues/pts/internal/repository"
	"github.com/go-co-op/gocron/v2"
)

// TokenPurgeJob deletes refresh tokens that expired or were revoked.
type TokenPurgeJob struct {
	tokens *repository.TokenRepo
	config *config.Config
}

func NewTokenPurgeJob(tokens *repository.TokenRepo, cfg *config.Config) *TokenPurgeJob {
	return &TokenPurgeJob{
		tokens: tokens,
		config: cfg,
	}
}

// GetName returns the job name.
func (j *TokenPurgeJob) GetName() string {
	return "refresh_token_purge"
}

// GetSchedule returns the job's schedule.
func (j *TokenPurgeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute runs one purge pass.
func (j *TokenPurgeJob) Execute() {
	removed, err := j.tokens.PurgeDead(time.Now())
	if err != nil {
		logger.Error("Failed to purge refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		logger.Info("Purged %d dead refresh tokens", removed)
	}
}
