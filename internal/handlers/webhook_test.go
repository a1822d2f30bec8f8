package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/config"
	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
)

type noopGenerationStore struct{}

func (noopGenerationStore) DebitCredits(userID uuid.UUID, amount int, description string) (bool, error) {
	return true, nil
}

func (noopGenerationStore) CreateGeneration(userID uuid.UUID, prompt string, creditsUsed int) (*models.Generation, error) {
	return &models.Generation{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      models.GenerationStatusPending,
		CreditsUsed: creditsUsed,
	}, nil
}

func (noopGenerationStore) GetGeneration(generationID, userID uuid.UUID) (*models.GenerationWithResults, error) {
	return &models.GenerationWithResults{
		Generation: models.Generation{ID: generationID, UserID: userID},
	}, nil
}

func (noopGenerationStore) GetGenerationByID(generationID uuid.UUID) (*models.Generation, error) {
	return &models.Generation{ID: generationID}, nil
}

func (noopGenerationStore) CompleteGeneration(generationID uuid.UUID, results []models.GenerationResult) error {
	return nil
}

func (noopGenerationStore) FailGeneration(generationID uuid.UUID, errorMsg string) error {
	return nil
}

type noopNotifier struct{}

func (noopNotifier) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	return nil
}

func webhookRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{GenerationWebhookToken: token}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	generations := services.NewGenerationService(noopGenerationStore{}, noopNotifier{}, 1, log)

	router := gin.New()
	router.POST("/api/webhooks/generation", handlers.NewWebhookHandler(cfg, generations).HandleGeneration)
	return router
}

func postWebhook(router *gin.Engine, token, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/webhooks/generation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerationWebhook_MissingToken(t *testing.T) {
	router := webhookRouter("shared-token")

	w := postWebhook(router, "", `{"event":"generation_completed","generation_id":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization token")
}

func TestGenerationWebhook_WrongToken(t *testing.T) {
	router := webhookRouter("shared-token")

	w := postWebhook(router, "wrong-token", `{"event":"generation_completed","generation_id":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization token")
}

func TestGenerationWebhook_MissingGenerationID(t *testing.T) {
	router := webhookRouter("shared-token")

	w := postWebhook(router, "shared-token", `{"event":"generation_completed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "generation_id is required")
}

func TestGenerationWebhook_UnknownEvent(t *testing.T) {
	router := webhookRouter("shared-token")

	w := postWebhook(router, "shared-token",
		`{"event":"generation_paused","generation_id":"`+uuid.New().String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown event")
}

func TestGenerationWebhook_AcceptsCompletion(t *testing.T) {
	router := webhookRouter("shared-token")

	body := `{"event":"generation_completed","generation_id":"` + uuid.New().String() +
		`","results":[{"image_url":"https://img.test/full.png"}]}`
	w := postWebhook(router, "shared-token", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
