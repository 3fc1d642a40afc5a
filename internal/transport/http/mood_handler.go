package http

import (
	"net/http"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"go.uber.org/zap"
)

// defaultTrendDays is the mood trend window when ?days is absent
const defaultTrendDays = 30

// MoodHandler handles mood entry requests
type MoodHandler struct {
	moodService service.MoodService
	log         *zap.Logger
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService, log *zap.Logger) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
		log:         log,
	}
}

// Create handles POST /moods
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req entity.MoodEntryCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.moodService.CreateEntry(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /moods?start_date=&end_date=
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	dates, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entries, err := h.moodService.ListEntries(r.Context(), userID, dates)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(entries))
}

// Get handles GET /moods/{entryID}
func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.moodService.GetEntry(r.Context(), entryID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Update handles PUT /moods/{entryID}
func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req entity.MoodEntryUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.moodService.UpdateEntry(r.Context(), entryID, userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /moods/{entryID}
func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.moodService.DeleteEntry(r.Context(), entryID, userID); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Mood entry deleted successfully"})
}

// Trends handles GET /moods/trends?days=
func (h *MoodHandler) Trends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	days, err := intQuery(r, "days", defaultTrendDays)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	trend, err := h.moodService.Trends(r.Context(), userID, days)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, trend)
}

// WeeklyStats handles GET /moods/stats/weekly
func (h *MoodHandler) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.moodService.WeeklyStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
