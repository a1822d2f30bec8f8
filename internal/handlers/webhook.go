package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fotomodel-backend/internal/config"
	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
)

type WebhookHandler struct {
	config      *config.Config
	generations *services.GenerationService
}

func NewWebhookHandler(cfg *config.Config, generations *services.GenerationService) *WebhookHandler {
	return &WebhookHandler{
		config:      cfg,
		generations: generations,
	}
}

// GenerationWebhookEvent is the callback payload from the image pipeline.
type GenerationWebhookEvent struct {
	Event        string                   `json:"event"` // "generation_completed" or "generation_failed"
	GenerationID string                   `json:"generation_id"`
	Error        string                   `json:"error,omitempty"`
	Results      []services.ResultPayload `json:"results,omitempty"`
}

// HandleGeneration godoc
// @Summary     Generation pipeline webhook
// @Description Receives completion callbacks for pending generations. Verified with a shared token.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       Authorization header string true "Shared webhook token"
// @Success     200 {object} map[string]string "status"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /webhooks/generation [post]
func (h *WebhookHandler) HandleGeneration(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization token"})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if h.config.GenerationWebhookToken != "" && token != h.config.GenerationWebhookToken {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization token"})
		return
	}

	var event GenerationWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse event",
			Message: err.Error(),
		})
		return
	}

	if event.GenerationID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "generation_id is required"})
		return
	}

	switch event.Event {
	case "generation_completed":
		go h.generations.HandleCompleted(event.GenerationID, event.Results)
	case "generation_failed":
		go h.generations.HandleFailed(event.GenerationID, event.Error)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
