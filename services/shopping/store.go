package shopping

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"skyretail/models"
	"skyretail/utils"
)

// SessionStore persists shopping sessions between calls. A missing or
// expired session surfaces as *SessionNotFoundError; any other failure
// is a store error, not a miss.
type SessionStore interface {
	Load(sessionID string) (*models.ShoppingSession, error)
	Save(session *models.ShoppingSession) error
	Delete(sessionID string) error
}

// RedisSessionStore keeps sessions in the shared Redis session cache
// under the session id, expiring with the configured TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore returns a store over the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) Load(sessionID string) (*models.ShoppingSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read shopping session: %w", err)
	}
	var session models.ShoppingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse shopping session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(session *models.ShoppingSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping session: %w", err)
	}
	if err := s.Client.Set(ctx, session.SessionID, data, utils.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store shopping session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	if err := s.Client.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete shopping session: %w", err)
	}
	return nil
}
