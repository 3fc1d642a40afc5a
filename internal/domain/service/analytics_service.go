package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsService fetches a user's history and runs the analytics core over it
type AnalyticsService interface {
	// Dashboard composes the overview of date, or of today when date is nil
	Dashboard(ctx context.Context, userID uuid.UUID, date *entity.Date) (*analytics.Dashboard, error)

	// HabitStreaks returns current and longest streaks of every active habit
	HabitStreaks(ctx context.Context, userID uuid.UUID) ([]analytics.HabitStreak, error)

	// MoodTrends charts the last days days up to today
	MoodTrends(ctx context.Context, userID uuid.UUID, days int) (*analytics.MoodTrend, error)

	// WeeklyStats rolls up the current week and the weeks-1 before it
	WeeklyStats(ctx context.Context, userID uuid.UUID, weeks int) ([]analytics.PeriodStats, error)

	// Calendar builds the month grid
	Calendar(ctx context.Context, userID uuid.UUID, year, month int) (*analytics.CalendarMonth, error)

	// SendWeeklyDigests publishes last week's rollup for every active user
	SendWeeklyDigests(ctx context.Context) error
}
