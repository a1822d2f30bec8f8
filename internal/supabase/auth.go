package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AuthClient talks to the GoTrue token endpoint directly. The typed gotrue
// client bundled with supabase-go does not expose the PKCE
// authorization-code grant, so this mirrors the REST call the hosted auth
// service documents.
type AuthClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

func NewAuthClient(supabaseURL, apiKey string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimSuffix(supabaseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ExchangeCode trades an OAuth authorization code for a session.
// codeVerifier may be empty when the flow did not use PKCE.
func (a *AuthClient) ExchangeCode(code, codeVerifier string) (*Session, error) {
	payload := map[string]string{
		"auth_code": code,
	}
	if codeVerifier != "" {
		payload["code_verifier"] = codeVerifier
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := a.baseURL + "/auth/v1/token?grant_type=pkce"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to exchange code: status %d, body: %s", resp.StatusCode, string(body))
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if session.User.ID == "" {
		return nil, fmt.Errorf("user id is empty in response, body: %s", string(body))
	}

	return &session, nil
}
