package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/farelens/flight-offers-service/internal/pkg/exception"
	"github.com/go-redis/redis_rate/v10"
)

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

const (
	locationsPath = "/v1/reference-data/locations"
	offersPath    = "/v2/shopping/flight-offers"
)

// Config for the Amadeus client.
type Config struct {
	BaseURL      string
	APIKey       string
	APISecret    string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// TokenProvider yields a valid bearer credential for provider calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client issues location and flight-offer searches against one Amadeus
// environment. Error payloads embedded in the response body are returned to
// the caller untouched; only transport failures produce a Go error.
type Client struct {
	http         *http.Client
	baseURL      string
	tokens       TokenProvider
	limiter      *redis_rate.Limiter
	rateLimitRPS int
}

func NewClient(cfg Config) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		http:         httpClient,
		baseURL:      cfg.BaseURL,
		tokens:       NewTokenSource(httpClient, cfg.BaseURL, cfg.APIKey, cfg.APISecret),
		limiter:      cfg.Limiter,
		rateLimitRPS: cfg.RateLimitRPS,
	}
}

// NewClientWithTokens is used by tests to inject a fake token provider.
func NewClientWithTokens(cfg Config, tokens TokenProvider) *Client {
	client := NewClient(cfg)
	client.tokens = tokens

	return client
}

// SearchLocations queries airport/city reference data for the keyword with
// the fixed parameter set used by the autocomplete flow.
func (c *Client) SearchLocations(ctx context.Context, keyword string) (LocationsResponse, error) {
	var payload LocationsResponse

	query := url.Values{
		"subType":     {"AIRPORT,CITY"},
		"keyword":     {keyword},
		"page[limit]": {"10"},
		"view":        {"LIGHT"},
	}

	err := c.call(ctx, http.MethodGet, locationsPath+"?"+query.Encode(), nil, &payload)
	if err != nil {
		return LocationsResponse{}, err
	}

	return payload, nil
}

// SearchFlightOffers posts one structured offer search.
func (c *Client) SearchFlightOffers(ctx context.Context, body OffersRequest) (OffersResponse, error) {
	var payload OffersResponse

	if err := c.call(ctx, http.MethodPost, offersPath, body, &payload); err != nil {
		return OffersResponse{}, err
	}

	return payload, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.allow(ctx); err != nil {
		return err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	// non-2xx responses still carry a decodable errors array, so the body is
	// decoded regardless of status and the caller inspects payload errors
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", path, resp.StatusCode, err)
	}

	return nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:amadeus", redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
