package localstorage

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/internal/kvstore"
	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

var (
	_ repository.Repository[member.Member]           = (*Repository[member.Member])(nil)
	_ repository.Repository[transaction.Transaction] = (*Repository[transaction.Transaction])(nil)
)

func NewMemberRepository(ctx context.Context, store kvstore.Store, seed []member.Member, logger *logrus.Logger) (*Repository[member.Member], error) {
	return New(ctx, store, member.StorageKey, seed, logger)
}

func NewTransactionRepository(ctx context.Context, store kvstore.Store, seed []transaction.Transaction, logger *logrus.Logger) (*Repository[transaction.Transaction], error) {
	return New(ctx, store, transaction.StorageKey, seed, logger)
}
