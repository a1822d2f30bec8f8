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

type GalleryHandler struct {
	gallery *services.GalleryService
}

func NewGalleryHandler(gallery *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		gallery: gallery,
	}
}

// List godoc
// @Summary     List completed generations
// @Description Returns a page of the user's completed generations with their results
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       page query int false "Zero-based page"
// @Success     200 {object} models.GalleryListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	page := parseBoundedInt(c.Query("page"), 0, 0, 1<<30)

	response, err := h.gallery.ListPage(userID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load gallery",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Save godoc
// @Summary     Save a generation result to the gallery
// @Description Saves a generation result exactly once per user; duplicates are rejected
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GallerySaveRequest true "Result to save"
// @Success     200 {object} models.GallerySaveResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /gallery/save [post]
func (h *GalleryHandler) Save(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.GallerySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	// Validation happens before any store access
	if strings.TrimSpace(req.GenerationResultID) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "generationResultId is required"})
		return
	}

	resultID, err := uuid.Parse(req.GenerationResultID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid generation result id"})
		return
	}

	galleryItemID, err := h.gallery.Save(userID, resultID, req.ImageURL, req.ThumbnailURL)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySaved) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image is already in your gallery"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save to gallery",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.GallerySaveResponse{
		Success:       true,
		GalleryItemID: galleryItemID.String(),
		Message:       "image saved to gallery",
	})
}
