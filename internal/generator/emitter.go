package generator

import (
	"math/rand"
	"time"

	"github.com/finseed/finseed/internal/model"
)

const (
	// WindowDays is the span of the generation window.
	WindowDays = 180

	// SubscriptionMonths is the number of 30-day blocks that receive a
	// flat recurring charge.
	SubscriptionMonths = 6

	subscriptionLow  = 10.0
	subscriptionHigh = 50.0
)

// EmitDay builds the transactions one user produces on one day. The count
// and amount range come from the persona's plan; the category is drawn
// uniformly with no correlation to persona. Returned records carry no ID;
// the store assigns identity on insert.
func EmitDay(rng *rand.Rand, userID int64, date time.Time, persona Persona) []model.Transaction {
	plan := PlanFor(persona, date)
	count := plan.MinCount + rng.Intn(plan.MaxCount-plan.MinCount+1)

	txns := make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, model.Transaction{
			UserID:   userID,
			Amount:   uniform(rng, plan.AmountLow, plan.AmountHigh),
			Category: model.Categories[rng.Intn(len(model.Categories))],
			Date:     date,
		})
	}
	return txns
}

// EmitSubscriptions builds the flat recurring charge: one record per
// elapsed 30-day block from start, applied to every user regardless of
// persona.
func EmitSubscriptions(rng *rand.Rand, userID int64, start time.Time) []model.Transaction {
	txns := make([]model.Transaction, 0, SubscriptionMonths)
	for month := 0; month < SubscriptionMonths; month++ {
		txns = append(txns, model.Transaction{
			UserID:   userID,
			Amount:   uniform(rng, subscriptionLow, subscriptionHigh),
			Category: model.CategorySubscriptions,
			Date:     start.AddDate(0, 0, 30*month),
		})
	}
	return txns
}

// uniform draws from [low, high).
func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}
