package storage

import (
	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

// Writer hands actions full repository access. Only one Writer should be
// active per store at a time; the operator guarantees that.
type Writer struct {
	Member      repository.Repository[member.Member]
	Transaction repository.Repository[transaction.Transaction]
}

func NewWriter(members repository.Repository[member.Member], transactions repository.Repository[transaction.Transaction]) *Writer {
	return &Writer{
		Member:      members,
		Transaction: transactions,
	}
}
