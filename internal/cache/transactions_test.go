package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finseed/finseed/internal/model"
	"github.com/finseed/finseed/internal/testutil"
)

func TestUserTransactionsKey(t *testing.T) {
	t.Parallel()

	if got := userTransactionsKey(42); got != "user_txns:42" {
		t.Errorf("userTransactionsKey(42) = %q, want user_txns:42", got)
	}
}

func TestUserTransactionsCache_RoundTrip(t *testing.T) {
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	ctx := context.Background()
	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	defer c.Close()

	// Unique per run so leftovers from earlier runs never collide.
	userID := time.Now().UnixNano()

	if _, err := c.GetUserTransactions(ctx, userID); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss for cold key, got %v", err)
	}

	txns := []*model.Transaction{
		{ID: 1, UserID: userID, Amount: 12.5, Category: model.CategoryGroceries, Date: time.Now().UTC().Truncate(time.Second)},
		{ID: 2, UserID: userID, Amount: 44, Category: model.CategoryTravel, Date: time.Now().UTC().Truncate(time.Second)},
	}

	if err := c.SetUserTransactions(ctx, userID, txns); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := c.GetUserTransactions(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].Amount != 12.5 || got[1].Category != model.CategoryTravel {
		t.Errorf("cached data mismatch: %+v", got)
	}

	if err := c.InvalidateUserTransactions(ctx, userID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := c.GetUserTransactions(ctx, userID); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after invalidation, got %v", err)
	}
}
