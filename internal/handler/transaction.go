package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finseed/finseed/internal/cache"
	"github.com/finseed/finseed/internal/handler/dto"
	"github.com/finseed/finseed/internal/model"
	"github.com/finseed/finseed/internal/repository"
)

// TransactionStore is the slice of the repository the transaction
// handlers need.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	ListTransactionsByUser(ctx context.Context, userID int64) ([]*model.Transaction, error)
}

// TransactionCache serves and invalidates cached per-user transaction
// lists. A miss is reported as cache.ErrCacheMiss.
type TransactionCache interface {
	GetUserTransactions(ctx context.Context, userID int64) ([]*model.Transaction, error)
	SetUserTransactions(ctx context.Context, userID int64, txns []*model.Transaction) error
	InvalidateUserTransactions(ctx context.Context, userID int64) error
}

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	store  TransactionStore
	cache  TransactionCache
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
// Pass nil for txnCache to disable list caching.
func NewTransactionHandler(store TransactionStore, txnCache TransactionCache, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		store:  store,
		cache:  txnCache,
		logger: logger,
	}
}

// Create handles POST /api/v1/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.UserID <= 0 {
		h.writeError(w, http.StatusBadRequest, "INVALID_USER_ID", "A positive user_id is required")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_CATEGORY", "Category is required")
		return
	}

	// Missing date defaults to now, matching the schema default.
	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	txn := &model.Transaction{
		UserID:   req.UserID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
	}

	if err := h.store.CreateTransaction(r.Context(), txn); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "Owning user does not exist")
			return
		}
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	if h.cache != nil {
		if err := h.cache.InvalidateUserTransactions(r.Context(), txn.UserID); err != nil {
			// Stale reads age out with the TTL.
			h.logger.Warn("cache_invalidate_failed", "user_id", txn.UserID, "error", err)
		}
	}

	h.logger.Info("transaction_created",
		"transaction_id", txn.ID,
		"user_id", txn.UserID,
		"category", txn.Category,
	)

	writeJSON(w, http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListByUser handles GET /api/v1/transactions/{userID}.
func (h *TransactionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		h.writeError(w, http.StatusBadRequest, "INVALID_USER_ID", "User ID must be a positive integer")
		return
	}

	if h.cache != nil {
		txns, err := h.cache.GetUserTransactions(r.Context(), userID)
		if err == nil {
			writeJSON(w, http.StatusOK, dto.ToTransactionListResponse(txns))
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.Warn("cache_read_failed", "user_id", userID, "error", err)
		}
	}

	txns, err := h.store.ListTransactionsByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetUserTransactions(r.Context(), userID, txns); err != nil {
			h.logger.Warn("cache_write_failed", "user_id", userID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, dto.ToTransactionListResponse(txns))
}

// writeError writes an error response.
func (h *TransactionHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
