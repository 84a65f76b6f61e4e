// Package cache is a read-through Redis cache for the latest-reading lookup.
// Entries are invalidated on ingest so a backdated reading can never pin a
// stale "latest" value.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"airsentry/internal/db"

	"github.com/go-redis/redis/v8"
)

const latestTTL = 5 * time.Minute

var ErrMarshalFailed = errors.New("failed to encode cached reading")

type Config struct {
	Addr string
}

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		MaxRetries: 3,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	return &RedisClient{client: client}, nil
}

func latestKey(deviceID string) string {
	return fmt.Sprintf("latest:%s", deviceID)
}

// GetLatest returns the cached latest reading, or nil on a miss.
func (r *RedisClient) GetLatest(ctx context.Context, deviceID string) (*db.Reading, error) {
	data, err := r.client.Get(ctx, latestKey(deviceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var reading db.Reading
	if err := json.Unmarshal([]byte(data), &reading); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshalFailed, err)
	}
	return &reading, nil
}

func (r *RedisClient) SetLatest(ctx context.Context, reading db.Reading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalFailed, err)
	}
	return r.client.Set(ctx, latestKey(reading.DeviceID), data, latestTTL).Err()
}

func (r *RedisClient) Invalidate(ctx context.Context, deviceID string) error {
	return r.client.Del(ctx, latestKey(deviceID)).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
