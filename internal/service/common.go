package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ZoneClock reads today's date in a fixed location
type ZoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock creates a clock for the given location
func NewClock(loc *time.Location) *ZoneClock {
	return &ZoneClock{loc: loc, now: time.Now}
}

// Today returns the current calendar day in the clock's location
func (c *ZoneClock) Today() entity.Date {
	return entity.DateOf(c.now().In(c.loc))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, fmt.Sprintf(format, args...))
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", service.ErrValidation, err)
}

// notifier fans a user's write out to the analytics cache and the event stream.
// Both are best effort: a failed invalidation or publish never fails the write.
type notifier struct {
	cache     service.AnalyticsCache
	publisher service.EventPublisher
	log       *zap.Logger
}

func (n *notifier) changed(ctx context.Context, userID uuid.UUID) {
	if n.cache == nil {
		return
	}
	if err := n.cache.Invalidate(ctx, userID); err != nil {
		n.log.Warn("failed to invalidate analytics cache",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

func (n *notifier) publish(ctx context.Context, eventType string, userID uuid.UUID, payload map[string]any) {
	if n.publisher == nil {
		return
	}
	outcome := "ok"
	if err := n.publisher.Publish(ctx, eventType, userID, payload); err != nil {
		outcome = "error"
		n.log.Warn("failed to publish event",
			zap.String("event_type", eventType),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
	metrics.Get().EventsPublished.WithLabelValues(eventType, outcome).Inc()
}

func checkRange(start, end *entity.Date) error {
	if start != nil && end != nil && end.Before(*start) {
		return invalidf("end_date %s is before start_date %s", end, start)
	}
	return nil
}
