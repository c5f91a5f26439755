package jobs

import (
	"fmt"
	"log/slog"

	"lorrylink/internal/auth"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	otpCleanupJob *OTPCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(codeStore auth.CodeStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		otpCleanupJob: NewOTPCleanupJob(codeStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.otpCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start otp cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.otpCleanupJob.Stop()
}
