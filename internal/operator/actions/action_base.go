package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/members-ledger/internal/storage"
)

// ErrInvalidInput marks actions rejected before touching storage.
var ErrInvalidInput = errors.New("invalid input")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
