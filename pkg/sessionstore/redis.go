package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"raahi/internal/models/agent_models"
)

// RedisStore keeps conversation contexts in redis so they survive restarts
// and can be shared across instances. Idle expiry rides on key TTL: every
// write refreshes it, so an expired conversation simply reads as absent.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, conversationID string) (*agent_models.ConversationContext, bool, error) {
	payload, err := s.client.Get(ctx, s.key(conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var conversation agent_models.ConversationContext
	if err := json.Unmarshal([]byte(payload), &conversation); err != nil {
		return nil, false, fmt.Errorf("corrupt conversation payload: %w", err)
	}
	return &conversation, true, nil
}

func (s *RedisStore) Put(ctx context.Context, conversationID string, conversation *agent_models.ConversationContext) error {
	payload, err := json.Marshal(conversation)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(conversationID), payload, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, s.key(conversationID)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(conversationID string) string {
	return "raahi:conversation:" + conversationID
}
