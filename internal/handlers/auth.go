package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotomodel-backend/internal/supabase"
)

// codeVerifierCookie is where the frontend parks the PKCE verifier for the
// duration of the OAuth round trip.
const codeVerifierCookie = "sb-code-verifier"

const (
	onboardingPath   = "/onboarding"
	defaultNextPath  = "/dashboard"
	callbackFailPath = "/login?error=auth_callback_error"
)

type codeExchanger interface {
	ExchangeCode(code, codeVerifier string) (*supabase.Session, error)
}

type userProvisioner interface {
	EnsureUser(userID uuid.UUID, email string) (bool, error)
}

type AuthHandler struct {
	auth  codeExchanger
	users userProvisioner
}

func NewAuthHandler(auth codeExchanger, users userProvisioner) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		users: users,
	}
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code for a session and routes new users to onboarding
// @Tags        auth
// @Param       code query string true  "Authorization code"
// @Param       next query string false "Post-login destination (default /dashboard)"
// @Success     302
// @Router      /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, callbackFailPath)
		return
	}

	verifier, _ := c.Cookie(codeVerifierCookie)

	session, err := h.auth.ExchangeCode(code, verifier)
	if err != nil {
		c.Redirect(http.StatusFound, callbackFailPath)
		return
	}

	userID, err := uuid.Parse(session.User.ID)
	if err != nil {
		c.Redirect(http.StatusFound, callbackFailPath)
		return
	}

	created, err := h.users.EnsureUser(userID, session.User.Email)
	if err != nil {
		c.Redirect(http.StatusFound, callbackFailPath)
		return
	}

	// Best-effort: the verifier is single-use
	c.SetCookie(codeVerifierCookie, "", -1, "/", "", false, true)

	if created {
		c.Redirect(http.StatusFound, onboardingPath)
		return
	}

	c.Redirect(http.StatusFound, sanitizeNext(c.Query("next")))
}

// sanitizeNext keeps the post-login redirect on this site.
func sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return defaultNextPath
	}
	return next
}
