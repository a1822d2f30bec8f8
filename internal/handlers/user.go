package handlers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotomodel-backend/internal/models"
	"fotomodel-backend/internal/supabase"
)

// userStore is what this handler needs from the database client.
type userStore interface {
	GetUser(userID uuid.UUID) (*models.User, error)
	UpdateUserName(userID uuid.UUID, fullName string) error
	UpdateUserPhone(userID uuid.UUID, phone string) error
}

type UserHandler struct {
	users userStore
}

func NewUserHandler(users userStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// UpdateName godoc
// @Summary     Update the user's display name
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateNameRequest true "New name"
// @Success     200 {object} models.UpdateNameResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /user/update-name [post]
func (h *UserHandler) UpdateName(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name cannot be empty"})
		return
	}

	if err := h.users.UpdateUserName(userID, fullName); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update name",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.UpdateNameResponse{
		Success:  true,
		Message:  "name updated",
		FullName: fullName,
	})
}

func (h *UserHandler) GetPhone(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load user",
			Message: supabase.TranslateError(err),
		})
		return
	}

	phone := ""
	if user.Phone.Valid {
		phone = user.Phone.String
	}

	c.JSON(http.StatusOK, models.PhoneResponse{Success: true, Phone: phone})
}

func (h *UserHandler) UpdatePhone(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	phone, valid := normalizePhone(req.Phone)
	if !valid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid phone number"})
		return
	}

	if err := h.users.UpdateUserPhone(userID, phone); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update phone",
			Message: supabase.TranslateError(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.PhoneResponse{Success: true, Phone: phone})
}

// normalizePhone strips spaces and separators and checks the result fits the
// E.164 envelope: optional leading +, 7 to 15 digits.
func normalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators are dropped
		default:
			return "", false
		}
	}

	phone := b.String()
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", false
	}

	return phone, true
}
