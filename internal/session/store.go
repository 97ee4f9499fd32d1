package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Circulx/Profile-management/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no state exists for a session id
var ErrSessionNotFound = errors.New("session not found")

// Store persists wizard session state across requests and reloads
type Store interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context, id string) (*State, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps session state as JSON values with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("onboarding:session:%s", id)
}

func (s *RedisStore) Save(ctx context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(state.ID), payload, s.ttl).Err(); err != nil {
		logger.Error("Failed to save session state", err, map[string]interface{}{
			"session_id": state.ID,
		})
		return err
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*State, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.Error("Failed to load session state", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
