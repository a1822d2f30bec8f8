package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/supabase"
)

type PosesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewPosesHandler(dbClient *supabase.DatabaseClient) *PosesHandler {
	return &PosesHandler{
		dbClient: dbClient,
	}
}

// Seed godoc
// @Summary     Seed reference poses
// @Description Installs the reference pose catalog. Idempotent; already-seeded poses are skipped.
// @Tags        poses
// @Produce     json
// @Success     200 {object} models.SeedPosesResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /seed-poses [get]
func (h *PosesHandler) Seed(c *gin.Context) {
	count, err := h.dbClient.SeedPoses(supabase.DefaultPoses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to seed poses",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.SeedPosesResponse{
		Success: true,
		Message: fmt.Sprintf("seeded %d poses", count),
		Count:   count,
	})
}
