package jobs

import (
	"context"
	"log/slog"
	"time"

	"lorrylink/internal/auth"

	"github.com/robfig/cron/v3"
)

// OTPCleanupJob evicts expired verification codes from the OTP store.
// Runs every minute; codes are also rejected lazily at verification time,
// so the sweep only bounds memory growth.
type OTPCleanupJob struct {
	store  auth.CodeStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOTPCleanupJob creates a new job sweeping the given code store.
func NewOTPCleanupJob(store auth.CodeStore, logger *slog.Logger) *OTPCleanupJob {
	return &OTPCleanupJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "otp_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *OTPCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		if evicted := j.store.EvictExpired(time.Now()); evicted > 0 {
			j.logger.InfoContext(context.Background(),
				"Evicted expired verification codes", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "OTP cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *OTPCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "OTP cleanup job stopped")
}
