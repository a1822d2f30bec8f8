package services

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/supabase"
)

// ErrInsufficientCredits means the user's balance cannot cover the debit.
var ErrInsufficientCredits = errors.New("not enough credits")

type GenerationStore interface {
	DebitCredits(userID uuid.UUID, amount int, description string) (bool, error)
	CreateGeneration(userID uuid.UUID, prompt string, creditsUsed int) (*models.Generation, error)
	GetGeneration(generationID, userID uuid.UUID) (*models.GenerationWithResults, error)
	GetGenerationByID(generationID uuid.UUID) (*models.Generation, error)
	CompleteGeneration(generationID uuid.UUID, results []models.GenerationResult) error
	FailGeneration(generationID uuid.UUID, errorMsg string) error
}

// Notifier publishes generation lifecycle events to the user's channel.
type Notifier interface {
	PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error
}

// ResultPayload is one generated image reported by the processing callback.
type ResultPayload struct {
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type GenerationService struct {
	store      GenerationStore
	notifier   Notifier
	creditCost int
	log        *slog.Logger
}

func NewGenerationService(store GenerationStore, notifier Notifier, creditCost int, log *slog.Logger) *GenerationService {
	return &GenerationService{
		store:      store,
		notifier:   notifier,
		creditCost: creditCost,
		log:        log,
	}
}

// Start debits the generation cost from the user and creates a pending
// generation. The debit is a single conditional update, so the balance
// never goes negative; a failed debit surfaces as ErrInsufficientCredits.
func (s *GenerationService) Start(userID uuid.UUID, prompt string) (*models.Generation, error) {
	cost := s.creditCost
	if cost > 0 {
		ok, err := s.store.DebitCredits(userID, cost, "fashion model generation")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInsufficientCredits
		}
	}

	gen, err := s.store.CreateGeneration(userID, prompt, cost)
	if err != nil {
		return nil, err
	}

	// Best-effort; the row insert already drives Realtime for subscribers.
	_ = s.notifier.PublishUserEvent(userID, "generation_started",
		supabase.GenerationStartedPayload(gen.ID, cost))

	return gen, nil
}

func (s *GenerationService) Get(generationID, userID uuid.UUID) (*models.GenerationWithResults, error) {
	return s.store.GetGeneration(generationID, userID)
}

// HandleCompleted records the results delivered by the processing callback
// and marks the generation completed. Safe to call twice for the same
// generation; the second call is a no-op.
func (s *GenerationService) HandleCompleted(generationID string, results []ResultPayload) {
	gen, ok := s.lookup(generationID)
	if !ok {
		return
	}
	if gen.Status == models.GenerationStatusCompleted {
		return
	}

	rows := make([]models.GenerationResult, len(results))
	for i, r := range results {
		rows[i] = models.GenerationResult{
			ImageURL: r.ImageURL,
		}
		if r.ThumbnailURL != "" {
			rows[i].ThumbnailURL = sql.NullString{String: r.ThumbnailURL, Valid: true}
		}
	}

	if err := s.store.CompleteGeneration(gen.ID, rows); err != nil {
		s.log.Error("failed to complete generation",
			"generation_id", gen.ID.String(), "error", err)
		return
	}

	_ = s.notifier.PublishUserEvent(gen.UserID, "generation_completed",
		supabase.GenerationCompletedPayload(gen.ID, len(rows)))
}

// HandleFailed marks the generation failed with the callback's error message.
func (s *GenerationService) HandleFailed(generationID, errorMsg string) {
	gen, ok := s.lookup(generationID)
	if !ok {
		return
	}

	if err := s.store.FailGeneration(gen.ID, errorMsg); err != nil {
		s.log.Error("failed to mark generation failed",
			"generation_id", gen.ID.String(), "error", err)
		return
	}

	_ = s.notifier.PublishUserEvent(gen.UserID, "generation_failed",
		supabase.GenerationFailedPayload(gen.ID, errorMsg))
}

func (s *GenerationService) lookup(generationID string) (*models.Generation, bool) {
	id, err := uuid.Parse(generationID)
	if err != nil {
		s.log.Warn("callback carried an invalid generation id", "generation_id", generationID)
		return nil, false
	}

	gen, err := s.store.GetGenerationByID(id)
	if err != nil {
		s.log.Warn("callback for unknown generation", "generation_id", generationID, "error", err)
		return nil, false
	}

	return gen, true
}
