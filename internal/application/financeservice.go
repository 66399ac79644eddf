package application

import (
	"context"
	"fmt"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// FinanceService relays financial records to the hosted backend and computes
// local summaries. A nil store means the backend was not configured.
type FinanceService struct {
	store driven.FinanceStore
}

func NewFinanceService(store driven.FinanceStore) *FinanceService {
	return &FinanceService{store: store}
}

// AddTransaction validates and forwards a transaction to the backend.
func (s *FinanceService) AddTransaction(ctx context.Context, tx model.Transaction) error {
	if s.store == nil {
		return fmt.Errorf("finance: %w", driven.ErrUnavailable)
	}
	if tx.UserID == "" {
		return fmt.Errorf("finance: missing user id")
	}
	if tx.Title == "" {
		return fmt.Errorf("finance: missing title")
	}
	if tx.Type != model.TransactionIncome && tx.Type != model.TransactionExpense {
		return fmt.Errorf("finance: invalid transaction type %q", tx.Type)
	}
	if err := s.store.AddTransaction(ctx, tx); err != nil {
		return fmt.Errorf("adding transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the user's recent transactions, newest first.
func (s *FinanceService) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if s.store == nil {
		return nil, fmt.Errorf("finance: %w", driven.ErrUnavailable)
	}
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txs, nil
}

// Balance returns income/expense totals over the user's recent transactions.
func (s *FinanceService) Balance(ctx context.Context, userID string) (model.BalanceSummary, error) {
	txs, err := s.ListTransactions(ctx, userID)
	if err != nil {
		return model.BalanceSummary{}, err
	}
	return model.Summarize(txs), nil
}
