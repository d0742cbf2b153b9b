package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GoogleClaims are the verified identity claims extracted from a Google ID
// token.
type GoogleClaims struct {
	Email string
	Name  string
}

// GoogleVerifier validates Google-issued ID tokens through the tokeninfo
// endpoint. Google verifies the token signature; the audience is checked
// locally against the configured OAuth client id.
type GoogleVerifier struct {
	clientID string
	endpoint string
	client   *http.Client
}

// NewGoogleVerifier builds a verifier. endpoint is overridable for tests;
// empty selects the Google default.
func NewGoogleVerifier(clientID, endpoint string) *GoogleVerifier {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = "https://oauth2.googleapis.com/tokeninfo"
	}
	return &GoogleVerifier{
		clientID: clientID,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Verify checks the ID token and returns its identity claims. It fails
// closed: any verification error or missing required claim yields an error.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleClaims, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errTokenInvalid
	}

	params := url.Values{}
	params.Set("id_token", idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errTokenInvalid
	}

	var payload struct {
		Aud           string `json:"aud"`
		Email         string `json:"email"`
		EmailVerified string `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if v.clientID != "" && payload.Aud != v.clientID {
		return nil, errTokenInvalid
	}
	if payload.Email == "" || payload.Name == "" {
		return nil, errMissingClaims
	}

	return &GoogleClaims{Email: payload.Email, Name: payload.Name}, nil
}
