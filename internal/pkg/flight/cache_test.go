package flight

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cacheRequestFixture() dto.FlightSearchRequest {
	return dto.FlightSearchRequest{
		DepartureID:  "JFK",
		ArrivalID:    "LAX",
		OutboundDate: "2026-03-10",
		ReturnDate:   "2026-03-17",
		Type:         dto.TripTypeRoundTrip,
		TravelClass:  "2",
		Adults:       2,
		Currency:     "USD",
	}
}

func TestSearchCache_Keys(t *testing.T) {
	cache := NewSearchCache(NewMockRedisClient(t))
	req := cacheRequestFixture()

	assert.Equal(t, "offers:lock:2026-03-10:2026-03-17:JFK:LAX:1:2:2:USD", cache.GetLockKey(req))
	assert.Equal(t, "offers:cache:2026-03-10:2026-03-17:JFK:LAX:1:2:2:USD", cache.GetCacheKey(req))
}

func TestSearchCache_KeyIgnoresViewOptions(t *testing.T) {
	cache := NewSearchCache(NewMockRedisClient(t))

	plain := cacheRequestFixture()
	withView := cacheRequestFixture()
	withView.SortBy = "duration"
	maxPrice := 400.0
	withView.Filter = &dto.FlightFilter{MaxPrice: &maxPrice}

	assert.Equal(t, cache.GetCacheKey(plain), cache.GetCacheKey(withView))
}

func TestSearchCache_AcquireLock(t *testing.T) {
	lockRequest := func(acquired bool) func(t *testing.T) {
		return func(t *testing.T) {
			redisClient := NewMockRedisClient(t)
			cache := NewSearchCache(redisClient)

			redisClient.On("SetNX", mock.Anything, "offers:lock:key", "1", 5*time.Second).
				Return(redis.NewBoolResult(acquired, nil))

			got, err := cache.AcquireLock(context.Background(), "offers:lock:key", 5*time.Second)
			require.NoError(t, err)
			assert.Equal(t, acquired, got)
		}
	}

	t.Run("acquired", lockRequest(true))
	t.Run("held_elsewhere", lockRequest(false))
}

func TestSearchCache_ReleaseLock(t *testing.T) {
	redisClient := NewMockRedisClient(t)
	cache := NewSearchCache(redisClient)

	redisClient.On("Del", mock.Anything, "offers:lock:key").
		Return(redis.NewIntResult(1, nil))

	err := cache.ReleaseLock(context.Background(), "offers:lock:key")
	assert.NoError(t, err)
}

func TestSearchCache_SetAndGetSearch(t *testing.T) {
	redisClient := NewMockRedisClient(t)
	cache := NewSearchCache(redisClient)

	data := dto.SearchData{
		SearchParameters: dto.SearchParameters{
			Engine:      "google_flights",
			DepartureID: "JFK",
			ArrivalID:   "LAX",
		},
		BestFlights:  []dto.FlightResult{{BookingToken: "a", Price: 200}},
		OtherFlights: []dto.FlightResult{},
	}

	payload, err := json.Marshal(data)
	require.NoError(t, err)

	redisClient.On("Set", mock.Anything, "offers:cache:key", payload, time.Minute).
		Return(redis.NewStatusResult("OK", nil))
	redisClient.On("Get", mock.Anything, "offers:cache:key").
		Return(redis.NewStringResult(string(payload), nil))

	err = cache.SetSearch(context.Background(), "offers:cache:key", data, time.Minute)
	require.NoError(t, err)

	got, err := cache.GetSearch(context.Background(), "offers:cache:key")
	require.NoError(t, err)

	diff := cmp.Diff(data, got)
	if diff != "" {
		t.Fatalf("round-tripped search data mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchCache_GetSearchMiss(t *testing.T) {
	redisClient := NewMockRedisClient(t)
	cache := NewSearchCache(redisClient)

	redisClient.On("Get", mock.Anything, "offers:cache:key").
		Return(redis.NewStringResult("", redis.Nil))

	_, err := cache.GetSearch(context.Background(), "offers:cache:key")
	assert.ErrorIs(t, err, redis.Nil)
}
