package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingSender struct {
	calls       int
	err         error
	hadDeadline bool
}

func (s *countingSender) SendWeeklyDigests(ctx context.Context) error {
	s.calls++
	_, s.hadDeadline = ctx.Deadline()
	return s.err
}

func TestDigestScheduler_SendDigests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := &countingSender{}
	d := NewDigestScheduler(sender, "0 8 * * MON", time.UTC, zap.New(core))

	d.sendDigests()

	assert.Equal(t, 1, sender.calls)
	assert.True(t, sender.hadDeadline)
	assert.Equal(t, 1, logs.FilterMessage("Weekly digest completed successfully").Len())
}

func TestDigestScheduler_SendDigestsLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := &countingSender{err: errors.New("kafka unavailable")}
	d := NewDigestScheduler(sender, "0 8 * * MON", time.UTC, zap.New(core))

	d.sendDigests()

	failures := logs.FilterMessage("Weekly digest finished with errors")
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, zap.ErrorLevel, failures.All()[0].Level)
}

func TestDigestScheduler_StartStop(t *testing.T) {
	d := NewDigestScheduler(&countingSender{}, "0 8 * * MON", time.UTC, zap.NewNop())
	require.NoError(t, d.Start())

	entries := d.cron.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, time.Monday, entries[0].Next.Weekday())
	assert.Equal(t, 8, entries[0].Next.Hour())

	d.Stop()
}

func TestDigestScheduler_InvalidSpec(t *testing.T) {
	d := NewDigestScheduler(&countingSender{}, "every monday", time.UTC, zap.NewNop())
	assert.Error(t, d.Start())
}
