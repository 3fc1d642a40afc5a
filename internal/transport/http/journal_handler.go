package http

import (
	"net/http"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"go.uber.org/zap"
)

// JournalHandler handles journal entry requests
type JournalHandler struct {
	journalService service.JournalService
	log            *zap.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService, log *zap.Logger) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		log:            log,
	}
}

// Create handles POST /journal
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req entity.JournalEntryCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.journalService.CreateEntry(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /journal?start_date=&end_date=
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	dates, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entries, err := h.journalService.ListEntries(r.Context(), userID, dates)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(entries))
}

// Get handles GET /journal/{entryID}
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.journalService.GetEntry(r.Context(), entryID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Update handles PUT /journal/{entryID}
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req entity.JournalEntryUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.journalService.UpdateEntry(r.Context(), entryID, userID, &req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /journal/{entryID}
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.journalService.DeleteEntry(r.Context(), entryID, userID); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Journal entry deleted successfully"})
}

// Regenerate handles POST /journal/{entryID}/regenerate-ai
func (h *JournalHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entry, err := h.journalService.RegenerateResponse(r.Context(), entryID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	response := ""
	if entry.AIResponse != nil {
		response = *entry.AIResponse
	}
	writeJSON(w, http.StatusOK, entity.CompanionReply{
		Response:    response,
		MoodAfter:   entry.MoodAfter,
		Suggestions: nonNil(entry.Suggestions),
	})
}

// WeeklyStats handles GET /journal/stats/weekly
func (h *JournalHandler) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.journalService.WeeklyStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
