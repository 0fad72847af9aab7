package accountstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

// RedisStore keeps one key per account whose value is the last token reset
// in milliseconds. Key presence defines account existence, so records are
// stored without expiration.
type RedisStore struct {
	db        redis.UniversalClient
	keyPrefix string
}

// NewRedisStore creates a Redis-backed account store with the default key prefix.
func NewRedisStore(redisClient redis.UniversalClient) *RedisStore {
	return NewRedisStoreWithConfig(redisClient, DefaultConfig())
}

// NewRedisStoreWithConfig creates a Redis-backed account store with a custom configuration.
func NewRedisStoreWithConfig(redisClient redis.UniversalClient, cfg Config) *RedisStore {
	return &RedisStore{
		db:        redisClient,
		keyPrefix: cfg.RedisKeyPrefix,
	}
}

func (s *RedisStore) key(accountID string) string {
	return s.keyPrefix + accountID
}

// Create registers an account with a zero reset timestamp.
// Returns ErrAccountExists if the id is already registered.
func (s *RedisStore) Create(ctx context.Context, accountID string) error {
	ok, err := s.db.SetNX(ctx, s.key(accountID), 0, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAccountExists
	}
	return nil
}

// Lookup resolves an account id; missing accounts yield (nil, nil).
func (s *RedisStore) Lookup(ctx context.Context, accountID string) (tokenize.Account, error) {
	val, err := s.db.Get(ctx, s.key(accountID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reset, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, err
	}

	return StoredAccount{ID: accountID, TokenReset: reset}, nil
}

// Invalidate revokes every token issued to the account before the given moment.
func (s *RedisStore) Invalidate(ctx context.Context, accountID string, at time.Time) error {
	// XX: only touch existing accounts, never create them here.
	ok, err := s.db.SetXX(ctx, s.key(accountID), at.UnixMilli(), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes the account record.
func (s *RedisStore) Delete(ctx context.Context, accountID string) error {
	return s.db.Del(ctx, s.key(accountID)).Err()
}
