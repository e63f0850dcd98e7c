package revalidate

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PageKeyPrefix prefixes cached page keys in Redis.
const PageKeyPrefix = "page:"

// redisClient is the subset of *redis.Client used by RedisSink.
type redisClient interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink drops the cached copy of a page and announces the path on a
// pub/sub channel so other cache nodes can drop theirs.
type RedisSink struct {
	client  redisClient
	channel string
}

func NewRedisSink(client redisClient, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) InvalidatePath(ctx context.Context, path string) error {
	if err := s.client.Del(ctx, PageKeyPrefix+path).Err(); err != nil {
		return fmt.Errorf("delete cached page: %w", err)
	}
	if s.channel == "" {
		return nil
	}
	if err := s.client.Publish(ctx, s.channel, path).Err(); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	return nil
}
