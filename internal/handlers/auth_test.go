package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/handlers"
	"fotomodel-backend/internal/supabase"
)

type stubExchanger struct {
	session *supabase.Session
	err     error
	code    string
}

func (s *stubExchanger) ExchangeCode(code, codeVerifier string) (*supabase.Session, error) {
	s.code = code
	return s.session, s.err
}

type stubProvisioner struct {
	created bool
	err     error
	email   string
}

func (s *stubProvisioner) EnsureUser(userID uuid.UUID, email string) (bool, error) {
	s.email = email
	return s.created, s.err
}

func sessionFor(userID uuid.UUID) *supabase.Session {
	return &supabase.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         supabase.AuthUser{ID: userID.String(), Email: "model@example.com"},
	}
}

func callbackRouter(exchanger *stubExchanger, provisioner *stubProvisioner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auth/callback", handlers.NewAuthHandler(exchanger, provisioner).Callback)
	return router
}

func doCallback(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/auth/callback"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCallback_MissingCodeRedirectsToLogin(t *testing.T) {
	router := callbackRouter(&stubExchanger{}, &stubProvisioner{})

	w := doCallback(router, "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?error=auth_callback_error", w.Header().Get("Location"))
}

func TestCallback_ExchangeFailureRedirectsToLogin(t *testing.T) {
	router := callbackRouter(&stubExchanger{err: errors.New("invalid grant")}, &stubProvisioner{})

	w := doCallback(router, "?code=abc")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?error=auth_callback_error", w.Header().Get("Location"))
}

func TestCallback_NewUserGoesToOnboarding(t *testing.T) {
	provisioner := &stubProvisioner{created: true}
	router := callbackRouter(&stubExchanger{session: sessionFor(uuid.New())}, provisioner)

	w := doCallback(router, "?code=abc&next=/wardrobe")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/onboarding", w.Header().Get("Location"))
	assert.Equal(t, "model@example.com", provisioner.email)
}

func TestCallback_ExistingUserGoesToNext(t *testing.T) {
	router := callbackRouter(&stubExchanger{session: sessionFor(uuid.New())}, &stubProvisioner{created: false})

	w := doCallback(router, "?code=abc&next=/wardrobe")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/wardrobe", w.Header().Get("Location"))
}

func TestCallback_DefaultsToDashboard(t *testing.T) {
	router := callbackRouter(&stubExchanger{session: sessionFor(uuid.New())}, &stubProvisioner{})

	w := doCallback(router, "?code=abc")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestCallback_RejectsOffsiteNext(t *testing.T) {
	exchanger := &stubExchanger{session: sessionFor(uuid.New())}
	router := callbackRouter(exchanger, &stubProvisioner{})

	for _, next := range []string{"https://evil.example", "//evil.example"} {
		w := doCallback(router, "?code=abc&next="+next)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	}
}

func TestCallback_ProvisioningFailureRedirectsToLogin(t *testing.T) {
	router := callbackRouter(
		&stubExchanger{session: sessionFor(uuid.New())},
		&stubProvisioner{err: errors.New("insert failed")},
	)

	w := doCallback(router, "?code=abc")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?error=auth_callback_error", w.Header().Get("Location"))
}
