// Package model defines domain entities for the application.
package model

import "time"

// Spending categories. The database stores category as free text; this
// list is the shared vocabulary the generator draws from.
const (
	CategoryGroceries     = "groceries"
	CategoryEntertainment = "entertainment"
	CategoryTech          = "tech"
	CategoryRent          = "rent"
	CategorySubscriptions = "subscriptions"
	CategoryDining        = "dining"
	CategoryTravel        = "travel"
)

// Categories lists every known spending category.
var Categories = []string{
	CategoryGroceries,
	CategoryEntertainment,
	CategoryTech,
	CategoryRent,
	CategorySubscriptions,
	CategoryDining,
	CategoryTravel,
}

// Transaction represents a single spending record owned by a user.
// Transactions are append-only: created by the seeder or the API and
// never mutated or deleted.
type Transaction struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
