package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/finseed/finseed/internal/model"
)

func TestEmitDay_CountAndFieldsWithinPlan(t *testing.T) {
	t.Parallel()

	known := make(map[string]bool, len(model.Categories))
	for _, c := range model.Categories {
		known[c] = true
	}

	rng := rand.New(rand.NewSource(1))

	for _, persona := range Personas {
		for day := 0; day < 14; day++ {
			date := monday.AddDate(0, 0, day)
			plan := PlanFor(persona, date)

			txns := EmitDay(rng, 7, date, persona)

			if len(txns) < plan.MinCount || len(txns) > plan.MaxCount {
				t.Fatalf("%s on %s: emitted %d transactions, want between %d and %d",
					persona, date.Weekday(), len(txns), plan.MinCount, plan.MaxCount)
			}

			for _, txn := range txns {
				if txn.ID != 0 {
					t.Errorf("emitted transaction carries ID %d, want store-assigned", txn.ID)
				}
				if txn.UserID != 7 {
					t.Errorf("UserID = %d, want 7", txn.UserID)
				}
				if !txn.Date.Equal(date) {
					t.Errorf("Date = %s, want %s", txn.Date, date)
				}
				if !known[txn.Category] {
					t.Errorf("Category = %q, not in the registry", txn.Category)
				}
				if txn.Amount < plan.AmountLow || txn.Amount >= plan.AmountHigh {
					t.Errorf("%s: Amount = %f, want in [%f, %f)", persona, txn.Amount, plan.AmountLow, plan.AmountHigh)
				}
			}
		}
	}
}

func TestEmitDay_CoversFullCountRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	plan := PlanFor(PersonaImpulsive, monday)

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[len(EmitDay(rng, 1, monday, PersonaImpulsive))] = true
	}

	for count := plan.MinCount; count <= plan.MaxCount; count++ {
		if !seen[count] {
			t.Errorf("count %d never emitted over 500 draws", count)
		}
	}
	if len(seen) != plan.MaxCount-plan.MinCount+1 {
		t.Errorf("observed counts %v, want exactly the inclusive range [%d, %d]", seen, plan.MinCount, plan.MaxCount)
	}
}

func TestEmitSubscriptions_Shape(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	start := time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC)

	txns := EmitSubscriptions(rng, 42, start)

	if len(txns) != SubscriptionMonths {
		t.Fatalf("emitted %d subscriptions, want %d", len(txns), SubscriptionMonths)
	}

	for month, txn := range txns {
		wantDate := start.AddDate(0, 0, 30*month)
		if !txn.Date.Equal(wantDate) {
			t.Errorf("subscription %d: Date = %s, want %s", month, txn.Date, wantDate)
		}
		if txn.Category != model.CategorySubscriptions {
			t.Errorf("subscription %d: Category = %q, want %q", month, txn.Category, model.CategorySubscriptions)
		}
		if txn.Amount < 10 || txn.Amount >= 50 {
			t.Errorf("subscription %d: Amount = %f, want in [10, 50)", month, txn.Amount)
		}
		if txn.UserID != 42 {
			t.Errorf("subscription %d: UserID = %d, want 42", month, txn.UserID)
		}
	}
}

func TestEmitSubscriptions_IgnoresPersona(t *testing.T) {
	t.Parallel()

	// Same seed, same draws: the subscription schedule does not consult
	// any persona state.
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	a := EmitSubscriptions(rand.New(rand.NewSource(9)), 1, start)
	b := EmitSubscriptions(rand.New(rand.NewSource(9)), 1, start)

	for i := range a {
		if a[i].Amount != b[i].Amount {
			t.Fatalf("subscription %d: amounts diverged for identical sources", i)
		}
	}
}
