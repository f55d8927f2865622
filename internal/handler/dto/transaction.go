package dto

import (
	"time"

	"github.com/finseed/finseed/internal/model"
)

// CreateTransactionRequest represents the request body for creating a
// transaction. Date is optional; a missing date defaults to now.
type CreateTransactionRequest struct {
	UserID   int64      `json:"user_id"`
	Amount   float64    `json:"amount"`
	Category string     `json:"category"`
	Date     *time.Time `json:"date,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// ToTransactionResponse converts a Transaction model to its response DTO.
func ToTransactionResponse(txn *model.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:       txn.ID,
		UserID:   txn.UserID,
		Amount:   txn.Amount,
		Category: txn.Category,
		Date:     txn.Date,
	}
}

// ToTransactionListResponse converts a slice of Transaction models to
// response DTOs.
func ToTransactionListResponse(txns []*model.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = *ToTransactionResponse(txn)
	}
	return responses
}
