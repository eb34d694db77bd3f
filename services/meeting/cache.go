package meeting

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"

	"huddle/models"
	"huddle/utils"
)

// QueryCache stores computed query responses. Entries are keyed by a per-date
// version so that any write to a date makes its earlier entries unreachable.
type QueryCache interface {
	Version(ctx context.Context, date string) (int64, error)
	Get(ctx context.Context, key string) (*models.MeetingQueryResponse, bool, error)
	Set(ctx context.Context, key string, resp *models.MeetingQueryResponse) error
	Invalidate(ctx context.Context, date string) error
}

// NoopQueryCache never stores anything.
type NoopQueryCache struct{}

func (NoopQueryCache) Version(context.Context, string) (int64, error) { return 0, nil }

func (NoopQueryCache) Get(context.Context, string) (*models.MeetingQueryResponse, bool, error) {
	return nil, false, nil
}

func (NoopQueryCache) Set(context.Context, string, *models.MeetingQueryResponse) error { return nil }

func (NoopQueryCache) Invalidate(context.Context, string) error { return nil }

// minVersionTTL keeps version counters alive well past any cached entry.
const minVersionTTL = 24 * time.Hour

type RedisQueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQueryCache(client *redis.Client, ttl time.Duration) *RedisQueryCache {
	return &RedisQueryCache{client: client, ttl: ttl}
}

func versionKey(date string) string {
	return utils.QueryVersionPrefix + date
}

func (c *RedisQueryCache) Version(ctx context.Context, date string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *RedisQueryCache) Get(ctx context.Context, key string) (*models.MeetingQueryResponse, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var resp models.MeetingQueryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (c *RedisQueryCache) Set(ctx context.Context, key string, resp *models.MeetingQueryResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisQueryCache) Invalidate(ctx context.Context, date string) error {
	versionTTL := 2 * c.ttl
	if versionTTL < minVersionTTL {
		versionTTL = minVersionTTL
	}
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, versionKey(date))
	pipe.Expire(ctx, versionKey(date), versionTTL)
	_, err := pipe.Exec(ctx)
	return err
}
