package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/members-ledger/internal/storage"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

// AddTransaction records a transaction for an existing member.
type AddTransaction struct {
	MemberID    int
	Description string
	Amount      decimal.Decimal
	Date        time.Time // defaults to today (UTC) if zero

	// Result is populated by Perform.
	Result transaction.Transaction
	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	members, err := writer.Member.GetAll(ctx).Await(ctx)
	if err != nil {
		return err
	}
	if member.FindByID(members, a.MemberID) == nil {
		return fmt.Errorf("member %d: %w", a.MemberID, member.ErrNotFound)
	}

	transactions, err := writer.Transaction.GetAll(ctx).Await(ctx)
	if err != nil {
		return err
	}

	date := a.Date
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	persisted, err := writer.Transaction.Set(ctx, transaction.Transaction{
		ID:          transaction.NextID(transactions),
		MemberID:    a.MemberID,
		Description: strings.TrimSpace(a.Description),
		Amount:      a.Amount,
		Date:        date,
	}).Await(ctx)
	if err != nil {
		return err
	}

	a.Result = persisted
	return nil
}
