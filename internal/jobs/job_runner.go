package jobs

import (
	"time"

	"prokat-rental/internal/config"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/service"
)

// JobRunner coordinates the order lifecycle jobs
type JobRunner struct {
	orders service.OrderService
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(orders service.OrderService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		orders: orders,
		config: cfg,
		now:    time.Now,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every lifecycle job in order (for manual execution).
// Activation goes first so a one-day rental that already ended moves
// pending -> active -> completed in a single run.
func (jr *JobRunner) RunAll() {
	jr.ActivateOrders()
	jr.CompleteOrders()
}
