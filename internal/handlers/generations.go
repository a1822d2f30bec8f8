package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
	"fotomodel-backend/internal/supabase"
)

type GenerationsHandler struct {
	generations *services.GenerationService
}

func NewGenerationsHandler(generations *services.GenerationService) *GenerationsHandler {
	return &GenerationsHandler{
		generations: generations,
	}
}

// Create godoc
// @Summary     Start a generation
// @Description Debits the generation cost from the user's credits and creates a pending generation
// @Tags        generations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateGenerationRequest true "Generation request"
// @Success     200 {object} models.GenerationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /generations [post]
func (h *GenerationsHandler) Create(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.CreateGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "prompt is required"})
		return
	}

	gen, err := h.generations.Start(userID, prompt)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCredits) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "not enough credits"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to start generation",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, services.GenerationToResponse(models.GenerationWithResults{Generation: *gen}))
}

func (h *GenerationsHandler) Get(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	generationID, err := uuid.Parse(c.Param("generation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid generation id"})
		return
	}

	gen, err := h.generations.Get(generationID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "generation not found"})
		return
	}

	c.JSON(http.StatusOK, services.GenerationToResponse(*gen))
}
