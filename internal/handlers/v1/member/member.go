package member

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/operator/actions"
	storagemember "github.com/carson-networks/members-ledger/internal/storage/member"
)

// Member is the API response model for a member.
type Member struct {
	ID   int    `json:"id" doc:"Member ID"`
	Name string `json:"name" doc:"Display name"`
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func actionError(err error, msg string) error {
	switch {
	case errors.Is(err, actions.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, storagemember.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
