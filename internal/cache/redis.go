package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists feed snapshots across restarts so a freshly started
// server can answer from the last snapshot instead of an empty cache.
type RedisStore struct {
	client *redis.Client
}

// envelope is the wire form of a persisted snapshot.
type envelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Close closes the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (rs *RedisStore) HealthCheck(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// Save persists value under key together with its fetch time. The entry
// expires after ttl so a long-dead server never serves ancient snapshots.
func (rs *RedisStore) Save(ctx context.Context, key string, value any, fetchedAt time.Time, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot payload: %w", err)
	}

	data, err := json.Marshal(envelope{FetchedAt: fetchedAt, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal snapshot envelope: %w", err)
	}

	return rs.client.Set(ctx, key, data, ttl).Err()
}

// Load reads the snapshot stored under key into value, returning its fetch
// time. A missing key reports found=false without an error.
func (rs *RedisStore) Load(ctx context.Context, key string, value any) (time.Time, bool, error) {
	data, err := rs.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return time.Time{}, false, fmt.Errorf("unmarshal snapshot envelope: %w", err)
	}
	if err := json.Unmarshal(env.Payload, value); err != nil {
		return time.Time{}, false, fmt.Errorf("unmarshal snapshot payload: %w", err)
	}

	return env.FetchedAt, true, nil
}
