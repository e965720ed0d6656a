package service

import (
	"github.com/carson-networks/members-ledger/internal/storage"
)

// Service holds all read-side business logic services.
type Service struct {
	Transaction *TransactionService
	Member      *MemberService
}

// NewService creates a new Service over the given storage reader.
func NewService(reader *storage.Reader) *Service {
	return &Service{
		Transaction: NewTransactionService(reader),
		Member:      NewMemberService(reader),
	}
}
