package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SearchCache stores successful normalized search payloads keyed by request
// parameters. Error responses are never cached.
type SearchCache struct {
	redis RedisClient
}

func NewSearchCache(redis RedisClient) *SearchCache {
	return &SearchCache{
		redis: redis,
	}
}

func (c *SearchCache) GetLockKey(req dto.FlightSearchRequest) string {
	return "offers:lock:" + requestKey(req)
}

func (c *SearchCache) GetCacheKey(req dto.FlightSearchRequest) string {
	return "offers:cache:" + requestKey(req)
}

// requestKey identifies one provider search; view options (filter/sort) are
// applied after the cache and deliberately excluded.
func requestKey(req dto.FlightSearchRequest) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%d:%s",
		req.OutboundDate, req.ReturnDate, req.DepartureID, req.ArrivalID,
		req.Type, req.TravelClass, req.Adults, req.Currency)
}

func (c *SearchCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *SearchCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *SearchCache) SetSearch(ctx context.Context,
	key string,
	data dto.SearchData,
	expiration time.Duration,
) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal search data: %w", err)
	}

	if err := c.redis.Set(ctx, key, payload, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set search data: %w", err)
	}

	return nil
}

func (c *SearchCache) GetSearch(ctx context.Context, key string) (dto.SearchData, error) {
	payload, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return dto.SearchData{}, err
	}

	var data dto.SearchData
	if err := json.Unmarshal(payload, &data); err != nil {
		return dto.SearchData{}, err
	}

	return data, nil
}
