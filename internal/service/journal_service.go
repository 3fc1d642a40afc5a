package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// companionContextEntries is how many earlier entries the companion sees
const companionContextEntries = 3

type journalService struct {
	journalRepo repository.JournalRepository
	companion   service.JournalCompanion
	clock       service.Clock
	notify      *notifier
	log         *zap.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(
	journalRepo repository.JournalRepository,
	companion service.JournalCompanion,
	clock service.Clock,
	cache service.AnalyticsCache,
	publisher service.EventPublisher,
	log *zap.Logger,
) service.JournalService {
	return &journalService{
		journalRepo: journalRepo,
		companion:   companion,
		clock:       clock,
		notify:      &notifier{cache: cache, publisher: publisher, log: log},
		log:         log,
	}
}

func validateJournal(content string, moodBefore *int) error {
	if err := validation.ValidateRequired("content", content, validation.MaxTextLength); err != nil {
		return invalid(err)
	}
	if err := validation.ValidateOptionalScore("mood_before", moodBefore); err != nil {
		return invalid(err)
	}
	return nil
}

func (s *journalService) CreateEntry(ctx context.Context, userID uuid.UUID, in *entity.JournalEntryCreate) (*entity.JournalEntry, error) {
	if err := validateJournal(in.Content, in.MoodBefore); err != nil {
		return nil, err
	}
	date := s.clock.Today()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	// Checked before the companion call so a duplicate costs nothing
	existing, err := s.journalRepo.List(ctx, userID, entity.DateRange{Start: &date, End: &date})
	if err != nil {
		return nil, fmt.Errorf("failed to check journal entry: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("journal entry for %s: %w", date, repository.ErrConflict)
	}

	now := time.Now().UTC()
	entry := &entity.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Content:    in.Content,
		MoodBefore: in.MoodBefore,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.respond(ctx, entry)

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.notify.changed(ctx, userID)
	s.notify.publish(ctx, service.EventJournalWritten, userID, map[string]any{
		"date":        entry.Date.String(),
		"mood_before": intOrNil(entry.MoodBefore),
		"mood_after":  intOrNil(entry.MoodAfter),
	})
	return entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error) {
	return s.journalRepo.GetByIDAndUserID(ctx, entryID, userID)
}

func (s *journalService) ListEntries(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.JournalEntry, error) {
	if err := checkRange(dates.Start, dates.End); err != nil {
		return nil, err
	}
	return s.journalRepo.List(ctx, userID, dates)
}

func (s *journalService) UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, update *entity.JournalEntryUpdate) (*entity.JournalEntry, error) {
	if update.Content.IsNull() {
		return nil, invalidf("content cannot be null")
	}

	entry, err := s.journalRepo.GetByIDAndUserID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}

	previousContent, previousMood := entry.Content, entry.MoodBefore
	update.ApplyTo(entry)
	if err := validateJournal(entry.Content, entry.MoodBefore); err != nil {
		return nil, err
	}
	moodChanged := !equalIntPtr(previousMood, entry.MoodBefore)
	if moodChanged {
		// mood_after is derived from mood_before; drop it unless the companion re-estimates it
		entry.MoodAfter = nil
	}
	if moodChanged || entry.Content != previousContent {
		s.respond(ctx, entry)
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.journalRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.notify.changed(ctx, userID)
	return entry, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error {
	if err := s.journalRepo.Delete(ctx, entryID, userID); err != nil {
		return err
	}
	s.notify.changed(ctx, userID)
	return nil
}

func (s *journalService) RegenerateResponse(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error) {
	entry, err := s.journalRepo.GetByIDAndUserID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}

	s.respond(ctx, entry)
	entry.UpdatedAt = time.Now().UTC()

	if err := s.journalRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.notify.changed(ctx, userID)
	return entry, nil
}

func (s *journalService) WeeklyStats(ctx context.Context, userID uuid.UUID) (*analytics.JournalSummary, error) {
	w, err := analytics.LastDays(s.clock.Today(), 6)
	if err != nil {
		return nil, err
	}

	entries, err := s.journalRepo.List(ctx, userID, entity.DateRange{Start: &w.Start, End: &w.End})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if err := analytics.ValidateJournals(entries); err != nil {
		return nil, err
	}

	summary := analytics.SummarizeJournal(entries, w)
	return &summary, nil
}

// respond fills the companion fields of entry. A failing companion leaves the
// entry without a reply rather than failing the write.
func (s *journalService) respond(ctx context.Context, entry *entity.JournalEntry) {
	previous, err := s.journalRepo.Recent(ctx, entry.UserID, entry.Date, companionContextEntries)
	if err != nil {
		s.log.Warn("failed to load previous journal entries", zap.Error(err))
		previous = nil
	}

	reply, err := s.companion.Respond(ctx, entry.Content, entry.MoodBefore, previous)
	if err != nil {
		s.log.Warn("journal companion failed",
			zap.String("entry_id", entry.ID.String()),
			zap.Error(err),
		)
		return
	}

	response := reply.Response
	entry.AIResponse = &response
	entry.MoodAfter = reply.MoodAfter
	entry.Suggestions = reply.Suggestions
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
