package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// digestTimeout bounds one run over all users
const digestTimeout = 10 * time.Minute

// DigestSender publishes the weekly digests; implemented by the analytics service
type DigestSender interface {
	SendWeeklyDigests(ctx context.Context) error
}

// DigestScheduler periodically publishes weekly wellness digests
type DigestScheduler struct {
	sender DigestSender
	cron   *cron.Cron
	spec   string
	log    *zap.Logger
}

// NewDigestScheduler creates a new digest scheduler. spec is a standard
// five-field cron expression evaluated in loc.
func NewDigestScheduler(sender DigestSender, spec string, loc *time.Location, log *zap.Logger) *DigestScheduler {
	return &DigestScheduler{
		sender: sender,
		cron:   cron.New(cron.WithLocation(loc)),
		spec:   spec,
		log:    log,
	}
}

// Start starts the digest scheduler
func (d *DigestScheduler) Start() error {
	d.log.Info("Starting digest scheduler", zap.String("spec", d.spec))

	_, err := d.cron.AddFunc(d.spec, d.sendDigests)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	d.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (d *DigestScheduler) Stop() {
	d.log.Info("Stopping digest scheduler...")
	ctx := d.cron.Stop()
	<-ctx.Done()
	d.log.Info("Digest scheduler stopped")
}

// sendDigests runs one digest pass
func (d *DigestScheduler) sendDigests() {
	d.log.Info("Running weekly digest...")

	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	if err := d.sender.SendWeeklyDigests(ctx); err != nil {
		d.log.Error("Weekly digest finished with errors", zap.Error(err))
		return
	}

	d.log.Info("Weekly digest completed successfully")
}
