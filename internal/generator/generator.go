package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finseed/finseed/internal/model"
)

// Store is the slice of the row store the driver needs. Both methods must
// be safe for concurrent use when Concurrency is above 1.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	CreateTransactions(ctx context.Context, txns []model.Transaction) error
}

// Options configure a generation run.
type Options struct {
	// UserCount is the number of synthetic users to create.
	UserCount int

	// Seed fixes the random sequence; zero seeds from the clock so every
	// run produces fresh data.
	Seed int64

	// Concurrency bounds how many users are generated at once. Values
	// below 2 run the reference sequential behavior.
	Concurrency int
}

// Generator seeds the store with users and persona-shaped spending
// histories. There is no retry and no rollback: the first store error
// aborts the run, and rows that were already committed stay.
type Generator struct {
	store  Store
	logger *slog.Logger
	opts   Options
}

// New creates a Generator.
func New(store Store, logger *slog.Logger, opts Options) *Generator {
	return &Generator{store: store, logger: logger, opts: opts}
}

// Run executes one generation run: creates the users, fixes a single
// generation start 180 days ago shared by every user, assigns each user
// one persona, then emits and persists each user's history.
func (g *Generator) Run(ctx context.Context) error {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	users := make([]*model.User, 0, g.opts.UserCount)
	for i := 0; i < g.opts.UserCount; i++ {
		user := &model.User{
			Email:     fmt.Sprintf("user%d@test.com", i),
			CreatedAt: time.Now().UTC(),
		}
		if err := g.store.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}

	start := time.Now().UTC().AddDate(0, 0, -WindowDays)

	// Personas are assigned up front from a single source so the workers
	// below never share a rand.Rand.
	pickRng := rand.New(rand.NewSource(seed))
	personas := make([]Persona, len(users))
	for i := range personas {
		personas[i] = Personas[pickRng.Intn(len(Personas))]
	}

	limit := g.opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, user := range users {
		// Each user draws from an independent source derived from the
		// base seed and the user index, so the worker count never changes
		// the statistical shape of a user's history.
		rng := rand.New(rand.NewSource(seed + int64(i) + 1))
		persona := personas[i]
		user := user
		eg.Go(func() error {
			return g.seedUser(ctx, rng, user, persona, start)
		})
	}

	return eg.Wait()
}

// seedUser walks the generation window for one user, stages the daily and
// subscription records, and persists them in a single bulk insert.
func (g *Generator) seedUser(ctx context.Context, rng *rand.Rand, user *model.User, persona Persona, start time.Time) error {
	txns := make([]model.Transaction, 0, WindowDays)
	for day := 0; day < WindowDays; day++ {
		date := start.AddDate(0, 0, day)
		txns = append(txns, EmitDay(rng, user.ID, date, persona)...)
	}
	txns = append(txns, EmitSubscriptions(rng, user.ID, start)...)

	if err := g.store.CreateTransactions(ctx, txns); err != nil {
		return fmt.Errorf("insert transactions for user %d: %w", user.ID, err)
	}

	g.logger.Info("user seeded",
		"user_id", user.ID,
		"email", user.Email,
		"persona", string(persona),
		"transactions", len(txns),
	)

	return nil
}
