package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fotomodel-backend/internal/gemini"
	"fotomodel-backend/internal/models"
)

const minPromptLength = 3

// backgroundGenerator is what this handler needs from the Gemini client.
type backgroundGenerator interface {
	GenerateBackground(ctx context.Context, prompt, aspectRatio string) (*gemini.GeneratedImage, error)
	RetryWithBackoff(fn func() error, maxRetries int) error
}

type GenerateHandler struct {
	generator backgroundGenerator
}

func NewGenerateHandler(generator backgroundGenerator) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
	}
}

// GenerateBackground godoc
// @Summary     Generate a background image
// @Description Generates a single background image from a text prompt via the hosted model
// @Tags        ai
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateBackgroundRequest true "Prompt"
// @Success     200 {object} models.GenerateBackgroundResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /ai/generate-background [post]
func (h *GenerateHandler) GenerateBackground(c *gin.Context) {
	if _, ok := requestUserID(c); !ok {
		return
	}

	var req models.GenerateBackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if len(prompt) < minPromptLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "prompt is too short"})
		return
	}

	var image *gemini.GeneratedImage
	err := h.generator.RetryWithBackoff(func() error {
		var err error
		image, err = h.generator.GenerateBackground(c.Request.Context(), prompt, req.AspectRatio)
		return err
	}, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate background",
			Message: "image generation is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, models.GenerateBackgroundResponse{
		Success:   true,
		ImageData: base64.StdEncoding.EncodeToString(image.Data),
		MimeType:  image.MimeType,
	})
}
