package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/services"
	"fotomodel-backend/internal/supabase"
)

type WardrobeHandler struct {
	wardrobe      *services.WardrobeService
	dbClient      *supabase.DatabaseClient
	storageClient *supabase.StorageClient
}

func NewWardrobeHandler(wardrobe *services.WardrobeService, dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *WardrobeHandler {
	return &WardrobeHandler{
		wardrobe:      wardrobe,
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

// CanAdd godoc
// @Summary     Wardrobe capacity check
// @Description Reports whether the user may add another wardrobe item under their plan
// @Tags        wardrobe
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WardrobeCapacityResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /wardrobe/can-add [get]
func (h *WardrobeHandler) CanAdd(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	capacity, err := h.wardrobe.Capacity(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to check wardrobe capacity",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, capacity)
}

// SaveItems godoc
// @Summary     Bulk-save uploads to the wardrobe
// @Description Records uploaded images as wardrobe items up to the plan's remaining capacity
// @Tags        wardrobe
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.WardrobeSaveItemsRequest true "Uploads to save"
// @Success     200 {object} models.WardrobeSaveItemsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /wardrobe/save-items [post]
func (h *WardrobeHandler) SaveItems(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.WardrobeSaveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(req.UploadIDs) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "uploadIds cannot be empty"})
		return
	}

	response, err := h.wardrobe.SaveItems(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save wardrobe items",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *WardrobeHandler) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	items, err := h.dbClient.ListWardrobeItems(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list wardrobe items",
			Message: supabase.TranslateError(err),
		})
		return
	}

	responses := make([]models.WardrobeItemResponse, len(items))
	for i, item := range items {
		responses[i] = models.WardrobeItemResponse{
			ID:        item.ID.String(),
			UploadID:  item.UploadID,
			ImageURL:  item.ImageURL,
			CreatedAt: item.CreatedAt,
		}
		if item.CollectionID.Valid {
			responses[i].CollectionID = item.CollectionID.UUID.String()
		}
		if item.Category.Valid {
			responses[i].Category = item.Category.String
		}
	}

	c.JSON(http.StatusOK, models.WardrobeListResponse{Items: responses})
}

func (h *WardrobeHandler) Delete(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item id"})
		return
	}

	item, err := h.dbClient.GetWardrobeItem(itemID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "wardrobe item not found"})
		return
	}

	if err := h.dbClient.SoftDeleteWardrobeItem(itemID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "wardrobe item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete wardrobe item",
			Message: supabase.TranslateError(err),
		})
		return
	}

	// Best-effort object cleanup; the row keeps the record either way
	if item.StoragePath != "" {
		_ = h.storageClient.DeleteFile(item.StoragePath)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "wardrobe item deleted"})
}
