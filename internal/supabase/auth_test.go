package supabase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/supabase"
)

func TestExchangeCode_Success(t *testing.T) {
	var gotPayload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))

		_ = json.NewDecoder(r.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(supabase.Session{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    3600,
			User: supabase.AuthUser{
				ID:    "9f6cf07c-0d44-4378-8f8e-88a61fa95f7a",
				Email: "model@example.com",
			},
		})
	}))
	defer server.Close()

	client := supabase.NewAuthClient(server.URL, "test-anon-key")

	session, err := client.ExchangeCode("auth-code-123", "verifier-456")

	assert.NoError(t, err)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "model@example.com", session.User.Email)
	assert.Equal(t, "auth-code-123", gotPayload["auth_code"])
	assert.Equal(t, "verifier-456", gotPayload["code_verifier"])
}

func TestExchangeCode_OmitsEmptyVerifier(t *testing.T) {
	var gotPayload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(supabase.Session{
			User: supabase.AuthUser{ID: "9f6cf07c-0d44-4378-8f8e-88a61fa95f7a"},
		})
	}))
	defer server.Close()

	client := supabase.NewAuthClient(server.URL, "test-anon-key")

	_, err := client.ExchangeCode("auth-code-123", "")

	assert.NoError(t, err)
	_, hasVerifier := gotPayload["code_verifier"]
	assert.False(t, hasVerifier)
}

func TestExchangeCode_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := supabase.NewAuthClient(server.URL, "test-anon-key")

	session, err := client.ExchangeCode("expired-code", "")

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "status 400")
}

func TestExchangeCode_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-token"}`))
	}))
	defer server.Close()

	client := supabase.NewAuthClient(server.URL, "test-anon-key")

	session, err := client.ExchangeCode("auth-code-123", "")

	assert.Error(t, err)
	assert.Nil(t, session)
}
