package http

import (
	"net/http"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"go.uber.org/zap"
)

// GoalHandler handles goal requests
type GoalHandler struct {
	goalService service.GoalService
	log         *zap.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalService, log *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		log:         log,
	}
}

// Create handles POST /goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req entity.GoalCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

// List handles GET /goals?completed=
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	completed, err := boolQuery(r, "completed")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	goals, err := h.goalService.ListGoals(r.Context(), userID, completed)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(goals))
}

// Get handles GET /goals/{goalID}
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	goalID, err := uuidParam(r, "goalID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	goal, err := h.goalService.GetGoal(r.Context(), goalID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// Update handles PUT /goals/{goalID}
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	goalID, err := uuidParam(r, "goalID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req entity.GoalUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(r.Context(), goalID, userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// Delete handles DELETE /goals/{goalID}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	goalID, err := uuidParam(r, "goalID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.goalService.DeleteGoal(r.Context(), goalID, userID); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}

// Complete handles POST /goals/{goalID}/complete
func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	goalID, err := uuidParam(r, "goalID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	goal, err := h.goalService.CompleteGoal(r.Context(), goalID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// Overview handles GET /goals/stats/overview
func (h *GoalHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	summary, err := h.goalService.Overview(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
