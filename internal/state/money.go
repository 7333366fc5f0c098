package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// AddTransaction records a money movement.
func (s *Store) AddTransaction(ctx context.Context, in types.NewTransaction) (*types.Transaction, error) {
	txn := types.Transaction{
		ID:              newID(prefixTxn),
		Type:            in.Type,
		Category:        in.Category,
		Amount:          in.Amount,
		Description:     in.Description,
		Date:            in.Date,
		Recurring:       in.Recurring,
		RecurringPeriod: in.RecurringPeriod,
		CreatedAt:       s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Transactions = append(st.Transactions, txn)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction applies a partial update. Unknown ids are a no-op and
// return nil.
func (s *Store) UpdateTransaction(ctx context.Context, id string, u types.TransactionUpdate) (*types.Transaction, error) {
	var updated *types.Transaction
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Transactions {
			if st.Transactions[i].ID != id {
				continue
			}
			t := &st.Transactions[i]
			if u.Type != nil {
				t.Type = *u.Type
			}
			if u.Category != nil {
				t.Category = *u.Category
			}
			if u.Amount != nil {
				t.Amount = *u.Amount
			}
			if u.Description != nil {
				t.Description = *u.Description
			}
			if u.Date != nil {
				t.Date = *u.Date
			}
			if u.Recurring != nil {
				t.Recurring = *u.Recurring
			}
			if u.RecurringPeriod != nil {
				t.RecurringPeriod = *u.RecurringPeriod
			}
			clone := *t
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes the transaction.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Transactions[:0]
		for _, t := range st.Transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		st.Transactions = kept
	})
}
