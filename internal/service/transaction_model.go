package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int
	MemberID    int
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// TransactionFilter narrows ListTransactions. Unset fields match everything.
type TransactionFilter struct {
	MemberID omit.Val[int]
}

// MemberTotal is the sum of a member's transactions.
type MemberTotal struct {
	MemberID         int
	MemberName       string
	Total            decimal.Decimal
	TransactionCount int
}

func transactionFromStorage(t transaction.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		MemberID:    t.MemberID,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
	}
}
