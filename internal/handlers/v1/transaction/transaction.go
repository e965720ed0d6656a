package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/operator/actions"
	"github.com/carson-networks/members-ledger/internal/service"
	"github.com/carson-networks/members-ledger/internal/storage/member"
)

// dateLayout is the calendar date format used on the wire.
const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int    `json:"id" doc:"Transaction ID"`
	MemberID    int    `json:"memberId" doc:"ID of the member who recorded it"`
	Description string `json:"description" doc:"Free-text description"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		MemberID:    tx.MemberID,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Date:        tx.Date.Format(dateLayout),
	}
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func actionError(err error, msg string) error {
	switch {
	case errors.Is(err, actions.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, member.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
