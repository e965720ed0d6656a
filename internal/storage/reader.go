package storage

import (
	"context"

	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

// CollectionReader is the read half of repository.Repository.
type CollectionReader[T repository.Entity] interface {
	GetAll(ctx context.Context) *repository.Single[[]T]
}

type Reader struct {
	Members      CollectionReader[member.Member]
	Transactions CollectionReader[transaction.Transaction]
}

func NewReader(members CollectionReader[member.Member], transactions CollectionReader[transaction.Transaction]) *Reader {
	return &Reader{
		Members:      members,
		Transactions: transactions,
	}
}
