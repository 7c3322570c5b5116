package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSource_CachesUntilExpiryBuffer(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "key", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: fmt.Sprintf("tok-%d", requests),
			TokenType:   "Bearer",
			ExpiresIn:   1799,
		})
	}))
	defer server.Close()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	source := NewTokenSource(server.Client(), server.URL, "key", "secret")
	source.now = func() time.Time { return now }

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, requests)

	// well inside the credential lifetime: cached value, no second exchange
	now = now.Add(1000 * time.Second)
	token, err = source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, requests)

	// inside the 60s buffer before expiry: one refresh
	now = now.Add(740 * time.Second)
	token, err = source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, 2, requests)
}

func TestTokenSource_RejectedGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client"}`)
	}))
	defer server.Close()

	source := NewTokenSource(server.Client(), server.URL, "key", "wrong")

	_, err := source.Token(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestTokenSource_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	source := NewTokenSource(server.Client(), server.URL, "key", "secret")

	_, err := source.Token(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestTokenSource_CancellationIsNotAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok", ExpiresIn: 1799})
	}))
	defer server.Close()

	source := NewTokenSource(server.Client(), server.URL, "key", "secret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Token(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAuthFailed)
}
