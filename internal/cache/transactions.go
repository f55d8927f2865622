package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finseed/finseed/internal/model"
)

const (
	userTxnsKeyPrefix = "user_txns:"

	// DefaultUserTransactionsTTL bounds staleness for cached per-user
	// transaction lists. Transactions are append-only, so a short TTL
	// plus invalidation on create is enough.
	DefaultUserTransactionsTTL = time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// userTransactionsKey builds the cache key for a user's transaction list.
func userTransactionsKey(userID int64) string {
	return fmt.Sprintf("%s%d", userTxnsKeyPrefix, userID)
}

// GetUserTransactions retrieves a cached transaction list for a user.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUserTransactions(ctx context.Context, userID int64) ([]*model.Transaction, error) {
	raw, err := c.client.Get(ctx, userTransactionsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var txns []*model.Transaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		// Treat a corrupt entry as a miss; the caller refills it.
		return nil, ErrCacheMiss
	}

	return txns, nil
}

// SetUserTransactions stores a user's transaction list with a TTL.
func (c *Cache) SetUserTransactions(ctx context.Context, userID int64, txns []*model.Transaction) error {
	raw, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("marshal transactions: %w", err)
	}

	if err := c.client.Set(ctx, userTransactionsKey(userID), raw, DefaultUserTransactionsTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidateUserTransactions drops the cached list for a user. Called
// after a transaction is created for that user.
func (c *Cache) InvalidateUserTransactions(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, userTransactionsKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
