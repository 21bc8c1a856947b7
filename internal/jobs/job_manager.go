package jobs

import (
	"fmt"

	"github.com/rs/zerolog"
)

// JobManager coordinates the background work of the service: the
// progression timers and, when enabled, the progression sweep.
type JobManager struct {
	scheduler *ProgressionScheduler
	sweep     *ProgressionSweepJob
	logger    zerolog.Logger
}

// NewJobManager creates the manager. sweep may be nil when the sweep is
// disabled by configuration.
func NewJobManager(scheduler *ProgressionScheduler, sweep *ProgressionSweepJob, logger zerolog.Logger) *JobManager {
	return &JobManager{
		scheduler: scheduler,
		sweep:     sweep,
		logger:    logger.With().Str("component", "job-manager").Logger(),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.sweep == nil {
		jm.logger.Info().Msg("progression sweep disabled")
		return nil
	}

	if err := jm.sweep.Start(); err != nil {
		return fmt.Errorf("failed to start progression sweep job: %w", err)
	}
	return nil
}

// StopAll stops the sweep and cancels pending progression timers.
func (jm *JobManager) StopAll() {
	if jm.sweep != nil {
		jm.sweep.Stop()
	}
	jm.scheduler.Stop()
}
