package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/internal/kvstore"
	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/repository/localstorage"
	"github.com/carson-networks/members-ledger/internal/seed"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

type Storage struct {
	KV           kvstore.Store
	Members      repository.Repository[member.Member]
	Transactions repository.Repository[transaction.Transaction]
}

// NewStorage builds the repositories over store, seeding empty collections
// from initial.
func NewStorage(ctx context.Context, store kvstore.Store, initial *seed.InitialData, logger *logrus.Logger) (*Storage, error) {
	members, err := localstorage.NewMemberRepository(ctx, store, initial.Members, logger)
	if err != nil {
		return nil, fmt.Errorf("member repository: %w", err)
	}

	transactions, err := localstorage.NewTransactionRepository(ctx, store, initial.Transactions, logger)
	if err != nil {
		return nil, fmt.Errorf("transaction repository: %w", err)
	}

	return &Storage{
		KV:           store,
		Members:      members,
		Transactions: transactions,
	}, nil
}

func (s *Storage) Read() *Reader {
	return NewReader(s.Members, s.Transactions)
}

func (s *Storage) Write() *Writer {
	return NewWriter(s.Members, s.Transactions)
}

func (s *Storage) Close() error {
	if s == nil || s.KV == nil {
		return nil
	}
	return s.KV.Close()
}
