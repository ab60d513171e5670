package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

const favoriteStoreKeyPrefix = "presto:my_store:"

// RedisPrefsStore holds the one piece of client state that outlives a
// session: the user's favorite store. Carts deliberately do not live here.
type RedisPrefsStore struct {
	rdb *redis.Client
}

func NewRedisPrefsStore(rdb *redis.Client) *RedisPrefsStore {
	return &RedisPrefsStore{rdb: rdb}
}

// FavoriteStore returns the user's favorite store id, or "" when none is set.
func (s *RedisPrefsStore) FavoriteStore(ctx context.Context, userID string) (string, error) {
	val, err := s.rdb.Get(ctx, favoriteStoreKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read favorite store: %w", err)
	}
	return val, nil
}

// SetFavoriteStore marks a store as the user's favorite.
func (s *RedisPrefsStore) SetFavoriteStore(ctx context.Context, userID, storeID string) error {
	if err := s.rdb.Set(ctx, favoriteStoreKeyPrefix+userID, storeID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save favorite store: %w", err)
	}
	log.Printf("Saved favorite store %s for user %s", storeID, userID)
	return nil
}
