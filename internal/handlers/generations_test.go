package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
)

// creditedStore refuses debits above its balance, otherwise behaves like the
// no-op store.
type creditedStore struct {
	noopGenerationStore
	credits int
}

func (s *creditedStore) DebitCredits(userID uuid.UUID, amount int, description string) (bool, error) {
	if s.credits < amount {
		return false, nil
	}
	s.credits -= amount
	return true, nil
}

func generationsRouter(store services.GenerationStore, creditCost int, userID uuid.UUID) *gin.Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := services.NewGenerationService(store, noopNotifier{}, creditCost, log)
	handler := handlers.NewGenerationsHandler(service)

	router := authedRouter(userID)
	router.POST("/api/generations", handler.Create)
	router.GET("/api/generations/:generation_id", handler.Get)
	return router
}

func TestCreateGeneration_EmptyPromptRejected(t *testing.T) {
	router := generationsRouter(&creditedStore{credits: 10}, 1, uuid.New())

	w := doJSON(router, "POST", "/api/generations", models.CreateGenerationRequest{Prompt: "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "prompt is required")
}

func TestCreateGeneration_InsufficientCredits(t *testing.T) {
	store := &creditedStore{credits: 1}
	router := generationsRouter(store, 2, uuid.New())

	w := doJSON(router, "POST", "/api/generations", models.CreateGenerationRequest{Prompt: "editorial studio look"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not enough credits")
	assert.Equal(t, 1, store.credits)
}

func TestCreateGeneration_ReturnsPendingGeneration(t *testing.T) {
	store := &creditedStore{credits: 5}
	router := generationsRouter(store, 2, uuid.New())

	w := doJSON(router, "POST", "/api/generations", models.CreateGenerationRequest{Prompt: "editorial studio look"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, store.credits)
}

func TestGetGeneration_InvalidID(t *testing.T) {
	router := generationsRouter(&creditedStore{credits: 5}, 1, uuid.New())

	w := doJSON(router, "GET", "/api/generations/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid generation id")
}
