package http

import (
	"net/http"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HabitHandler handles habit and check-in requests
type HabitHandler struct {
	habitService     service.HabitService
	analyticsService service.AnalyticsService
	log              *zap.Logger
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habitService service.HabitService, analyticsService service.AnalyticsService, log *zap.Logger) *HabitHandler {
	return &HabitHandler{
		habitService:     habitService,
		analyticsService: analyticsService,
		log:              log,
	}
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req entity.HabitCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	habit, err := h.habitService.CreateHabit(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

// ListHabits handles GET /habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	habits, err := h.habitService.ListHabits(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(habits))
}

// GetHabit handles GET /habits/{habitID}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	habitID, err := uuidParam(r, "habitID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	habit, err := h.habitService.GetHabit(r.Context(), habitID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// UpdateHabit handles PUT /habits/{habitID}
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	habitID, err := uuidParam(r, "habitID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req entity.HabitUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	habit, err := h.habitService.UpdateHabit(r.Context(), habitID, userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// DeleteHabit handles DELETE /habits/{habitID}
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	habitID, err := uuidParam(r, "habitID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.habitService.DeleteHabit(r.Context(), habitID, userID); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Habit deleted successfully"})
}

// CheckIn handles POST /habits/check-ins
func (h *HabitHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req entity.CheckInCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if req.HabitID == uuid.Nil {
		writeError(w, r, h.log, badRequest("habit_id is required"))
		return
	}

	checkIn, err := h.habitService.CheckIn(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, checkIn)
}

// ListCheckIns handles GET /habits/check-ins
func (h *HabitHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var filter entity.CheckInFilter
	if raw := r.URL.Query().Get("habit_id"); raw != "" {
		habitID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, h.log, badRequest("invalid habit_id"))
			return
		}
		filter.HabitID = &habitID
	}
	dates, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	filter.StartDate, filter.EndDate = dates.Start, dates.End

	checkIns, err := h.habitService.ListCheckIns(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(checkIns))
}

// UpdateCheckIn handles PUT /habits/check-ins/{checkInID}
func (h *HabitHandler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	checkInID, err := uuidParam(r, "checkInID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req entity.CheckInUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	checkIn, err := h.habitService.UpdateCheckIn(r.Context(), checkInID, userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, checkIn)
}

// Streaks handles GET /habits/streaks
func (h *HabitHandler) Streaks(w http.ResponseWriter, r *http.Request) {
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
