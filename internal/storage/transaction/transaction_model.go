package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageKey is the local storage key holding the transactions collection.
const StorageKey = "transactions"

// Transaction represents a transaction record.
type Transaction struct {
	ID          int             `json:"id"`
	MemberID    int             `json:"memberId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

func (t Transaction) Identifier() int {
	return t.ID
}

// NextID returns one more than the largest ID in transactions, or 1 when empty.
func NextID(transactions []Transaction) int {
	next := 1
	for _, t := range transactions {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}
