package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/supabase"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type CreditsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewCreditsHandler(dbClient *supabase.DatabaseClient) *CreditsHandler {
	return &CreditsHandler{
		dbClient: dbClient,
	}
}

// History godoc
// @Summary     Credit ledger history
// @Description Returns a page of the user's append-only credit transaction ledger
// @Tags        credits
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       limit  query int false "Page size (default 20, max 100)"
// @Param       offset query int false "Offset into the ledger"
// @Success     200 {object} models.CreditHistoryResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /credits/history [get]
func (h *CreditsHandler) History(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	limit := parseBoundedInt(c.Query("limit"), defaultHistoryLimit, 1, maxHistoryLimit)
	offset := parseBoundedInt(c.Query("offset"), 0, 0, 1<<30)

	total, err := h.dbClient.CountCreditTransactions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load credit history",
			Message: supabase.TranslateError(err),
		})
		return
	}

	transactions, err := h.dbClient.ListCreditTransactions(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load credit history",
			Message: supabase.TranslateError(err),
		})
		return
	}

	responses := make([]models.CreditTransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = models.CreditTransactionResponse{
			ID:        tx.ID.String(),
			Amount:    tx.Amount,
			CreatedAt: tx.CreatedAt,
		}
		if tx.Description.Valid {
			responses[i].Description = tx.Description.String
		}
	}

	c.JSON(http.StatusOK, models.CreditHistoryResponse{
		Transactions: responses,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	})
}

func parseBoundedInt(raw string, fallback, min, max int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
