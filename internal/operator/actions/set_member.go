package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/members-ledger/internal/storage"
	"github.com/carson-networks/members-ledger/internal/storage/member"
)

// SetMember upserts the member with an explicit ID.
type SetMember struct {
	ID   int
	Name string

	// Result is populated by Perform.
	Result member.Member
	IAction
}

func (a *SetMember) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: member id must be positive", ErrInvalidInput)
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}

	persisted, err := writer.Member.Set(ctx, member.Member{ID: a.ID, Name: name}).Await(ctx)
	if err != nil {
		return err
	}

	a.Result = persisted
	return nil
}
