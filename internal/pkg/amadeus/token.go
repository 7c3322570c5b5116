package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/farelens/flight-offers-service/internal/pkg/exception"
)

// ErrAuthFailed is raised when the client-credentials grant fails. Callers
// surface it as a search-level failure instead of retrying.
var ErrAuthFailed = exception.ApplicationError{
	StatusCode: http.StatusUnauthorized,
	Message:    "authentication failed",
}

// tokenExpiryBuffer forces a refresh slightly before the credential actually
// expires so in-flight requests never race the expiry.
const tokenExpiryBuffer = 60 * time.Second

const tokenPath = "/v1/security/oauth2/token"

// TokenSource caches one bearer credential and refreshes it on demand via the
// OAuth2 client-credentials grant. Refresh is idempotent per credential; the
// mutex only prevents redundant concurrent refreshes.
type TokenSource struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	apiSecret string
	now       func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenSource(client *http.Client, baseURL, apiKey, apiSecret string) *TokenSource {
	return &TokenSource{
		client:    client,
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// Token returns the cached credential while it is still valid (with a 60s
// buffer) and performs one grant request otherwise.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiry.Add(-tokenExpiryBuffer)) {
		return s.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.apiKey},
		"client_secret": {s.apiSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		// cancellation unwinds as-is, never as an auth failure
		if ctx.Err() != nil {
			return "", fmt.Errorf("token request cancelled: %w", ctx.Err())
		}

		slog.ErrorContext(ctx, "token exchange failed", slog.Any("error", err))

		return "", ErrAuthFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "token exchange rejected", slog.Int("status", resp.StatusCode))

		return "", ErrAuthFailed
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		slog.ErrorContext(ctx, "cannot decode token response", slog.Any("error", err))

		return "", ErrAuthFailed
	}

	s.token = tokenResp.AccessToken
	s.expiry = s.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return s.token, nil
}
