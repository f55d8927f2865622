package generator

import (
	"testing"
	"time"
)

// 2024-01-01 was a Monday.
var (
	monday   = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	friday   = time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, time.January, 6, 12, 0, 0, 0, time.UTC)
	sunday   = time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC)
)

func TestPlanFor_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		persona Persona
		date    time.Time
		want    DayPlan
	}{
		{"frugal", PersonaFrugal, monday, DayPlan{0, 1, 5, 30}},
		{"balanced", PersonaBalanced, monday, DayPlan{1, 2, 10, 70}},
		{"impulsive", PersonaImpulsive, monday, DayPlan{1, 4, 20, 200}},
		{"weekend on saturday", PersonaWeekend, saturday, DayPlan{2, 4, 30, 150}},
		{"weekend on sunday", PersonaWeekend, sunday, DayPlan{2, 4, 30, 150}},
		{"weekend on monday", PersonaWeekend, monday, DayPlan{0, 1, 10, 40}},
		{"weekend on friday", PersonaWeekend, friday, DayPlan{0, 1, 10, 40}},
		{"big spender", PersonaBigSpender, monday, DayPlan{0, 2, 50, 500}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PlanFor(tt.persona, tt.date)
			if got != tt.want {
				t.Errorf("PlanFor(%s, %s) = %+v, want %+v", tt.persona, tt.date.Weekday(), got, tt.want)
			}
		})
	}
}

func TestPlanFor_BoundsAreSane(t *testing.T) {
	t.Parallel()

	// Walk a full week for every persona so both weekend branches run.
	for _, persona := range Personas {
		for day := 0; day < 7; day++ {
			date := monday.AddDate(0, 0, day)
			plan := PlanFor(persona, date)

			if plan.MinCount < 0 {
				t.Errorf("%s on %s: MinCount = %d, want >= 0", persona, date.Weekday(), plan.MinCount)
			}
			if plan.MaxCount < plan.MinCount {
				t.Errorf("%s on %s: MaxCount = %d < MinCount = %d", persona, date.Weekday(), plan.MaxCount, plan.MinCount)
			}
			if plan.AmountLow <= 0 {
				t.Errorf("%s on %s: AmountLow = %f, want > 0", persona, date.Weekday(), plan.AmountLow)
			}
			if plan.AmountHigh <= plan.AmountLow {
				t.Errorf("%s on %s: AmountHigh = %f, want > %f", persona, date.Weekday(), plan.AmountHigh, plan.AmountLow)
			}
		}
	}
}

func TestPlanFor_WeekendBranchesOnWeekday(t *testing.T) {
	t.Parallel()

	weekendPlan := DayPlan{2, 4, 30, 150}
	weekdayPlan := DayPlan{0, 1, 10, 40}

	// Two full weeks.
	for day := 0; day < 14; day++ {
		date := monday.AddDate(0, 0, day)

		want := weekdayPlan
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			want = weekendPlan
		}

		if got := PlanFor(PersonaWeekend, date); got != want {
			t.Errorf("PlanFor(weekend, %s) = %+v, want %+v", date.Weekday(), got, want)
		}
	}
}

func TestPlanFor_UnknownPersonaFallsBackToBigSpender(t *testing.T) {
	t.Parallel()

	unknowns := []Persona{"", "miser", "BIG_SPENDER", "weekend ", "investor"}

	for _, persona := range unknowns {
		for day := 0; day < 7; day++ {
			date := monday.AddDate(0, 0, day)

			got := PlanFor(persona, date)
			want := PlanFor(PersonaBigSpender, date)
			if got != want {
				t.Errorf("PlanFor(%q, %s) = %+v, want big_spender plan %+v", persona, date.Weekday(), got, want)
			}
		}
	}
}
