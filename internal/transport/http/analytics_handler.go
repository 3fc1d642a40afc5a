package http

import (
	"net/http"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"go.uber.org/zap"
)

// defaultWeeks is the weekly-stats window when ?weeks is absent
const defaultWeeks = 4

// AnalyticsHandler serves the cross-domain analytics views
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	log              *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		log:              log,
	}
}

// Dashboard handles GET /analytics/dashboard?date=
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	date, err := dateQuery(r, "date")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	dashboard, err := h.analyticsService.Dashboard(r.Context(), userID, date)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

// HabitStreaks handles GET /analytics/habits/streaks
func (h *AnalyticsHandler) HabitStreaks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	streaks, err := h.analyticsService.HabitStreaks(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(streaks))
}

// MoodTrends handles GET /analytics/moods/trends?days=
func (h *AnalyticsHandler) MoodTrends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	days, err := intQuery(r, "days", defaultTrendDays)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	trend, err := h.analyticsService.MoodTrends(r.Context(), userID, days)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, trend)
}

// WeeklyStats handles GET /analytics/weekly-stats?weeks=
func (h *AnalyticsHandler) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	weeks, err := intQuery(r, "weeks", defaultWeeks)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	stats, err := h.analyticsService.WeeklyStats(r.Context(), userID, weeks)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(stats))
}

// Calendar handles GET /analytics/calendar/{year}/{month}
func (h *AnalyticsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	year, err := intParam(r, "year")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	calendar, err := h.analyticsService.Calendar(r.Context(), userID, year, month)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, calendar)
}
