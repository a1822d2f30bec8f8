package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/supabase"
)

type ChatHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewChatHandler(dbClient *supabase.DatabaseClient) *ChatHandler {
	return &ChatHandler{
		dbClient: dbClient,
	}
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	conversations, err := h.dbClient.ListConversations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list conversations",
			Message: supabase.TranslateError(err),
		})
		return
	}

	responses := make([]models.ConversationResponse, len(conversations))
	for i, conv := range conversations {
		responses[i] = conversationToResponse(conv)
	}

	c.JSON(http.StatusOK, models.ConversationListResponse{Conversations: responses})
}

func (h *ChatHandler) CreateConversation(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body creates an untitled conversation
		req = models.CreateConversationRequest{}
	}

	conv, err := h.dbClient.CreateConversation(userID, req.Title, req.Metadata)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create conversation",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, conversationToResponse(*conv))
}

func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid conversation id"})
		return
	}

	if err := h.dbClient.SoftDeleteConversation(conversationID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete conversation",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "conversation deleted"})
}

func conversationToResponse(conv models.ChatConversation) models.ConversationResponse {
	resp := models.ConversationResponse{
		ID:        conv.ID.String(),
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
	if conv.Title.Valid {
		resp.Title = conv.Title.String
	}
	if len(conv.Metadata) > 0 {
		var metadata map[string]interface{}
		if err := json.Unmarshal(conv.Metadata, &metadata); err == nil {
			resp.Metadata = metadata
		}
	}

	return resp
}
