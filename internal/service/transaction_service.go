package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/members-ledger/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader *storage.Reader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader *storage.Reader) *TransactionService {
	return &TransactionService{reader: reader}
}

// ListTransactions returns the transactions matching filter in insertion order.
// A nil filter returns all.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := s.reader.Transactions.GetAll(ctx).Await(ctx)
	if err != nil {
		return nil, err
	}

	memberID, byMember := 0, false
	if filter != nil {
		memberID, byMember = filter.MemberID.Get()
	}

	transactions := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		if byMember && row.MemberID != memberID {
			continue
		}
		transactions = append(transactions, transactionFromStorage(row))
	}
	return transactions, nil
}

// MemberTotals sums transaction amounts per member, in member order. Members
// without transactions total zero; transactions of unknown members are skipped.
func (s *TransactionService) MemberTotals(ctx context.Context) ([]MemberTotal, error) {
	members, err := s.reader.Members.GetAll(ctx).Await(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.reader.Transactions.GetAll(ctx).Await(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]MemberTotal, len(members))
	index := make(map[int]int, len(members))
	for i, m := range members {
		totals[i] = MemberTotal{
			MemberID:   m.ID,
			MemberName: m.Name,
			Total:      decimal.Zero,
		}
		index[m.ID] = i
	}

	for _, t := range transactions {
		i, ok := index[t.MemberID]
		if !ok {
			continue
		}
		totals[i].Total = totals[i].Total.Add(t.Amount)
		totals[i].TransactionCount++
	}
	return totals, nil
}
