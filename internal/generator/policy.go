package generator

import "time"

// DayPlan describes how a persona behaves on one calendar day: inclusive
// bounds for the number of transactions, and the amount range each one is
// drawn from.
type DayPlan struct {
	MinCount   int
	MaxCount   int
	AmountLow  float64
	AmountHigh float64
}

// PlanFor returns the spending plan for a persona on the given day.
// Unrecognized labels take the big_spender arm rather than failing; the
// seeder only hands out known personas, but callers with free-form labels
// stay on a defined path.
func PlanFor(p Persona, date time.Time) DayPlan {
	switch p {
	case PersonaFrugal:
		return DayPlan{MinCount: 0, MaxCount: 1, AmountLow: 5, AmountHigh: 30}
	case PersonaBalanced:
		return DayPlan{MinCount: 1, MaxCount: 2, AmountLow: 10, AmountHigh: 70}
	case PersonaImpulsive:
		return DayPlan{MinCount: 1, MaxCount: 4, AmountLow: 20, AmountHigh: 200}
	case PersonaWeekend:
		if isWeekend(date) {
			return DayPlan{MinCount: 2, MaxCount: 4, AmountLow: 30, AmountHigh: 150}
		}
		return DayPlan{MinCount: 0, MaxCount: 1, AmountLow: 10, AmountHigh: 40}
	default:
		// big_spender: large but infrequent purchases.
		return DayPlan{MinCount: 0, MaxCount: 2, AmountLow: 50, AmountHigh: 500}
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
