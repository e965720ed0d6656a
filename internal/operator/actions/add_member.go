package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/members-ledger/internal/storage"
	"github.com/carson-networks/members-ledger/internal/storage/member"
)

// AddMember appends a member under the next free ID.
type AddMember struct {
	Name string

	// Result is populated by Perform.
	Result member.Member
	IAction
}

func (a *AddMember) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}

	members, err := writer.Member.GetAll(ctx).Await(ctx)
	if err != nil {
		return err
	}

	persisted, err := writer.Member.Set(ctx, member.Member{
		ID:   member.NextID(members),
		Name: name,
	}).Await(ctx)
	if err != nil {
		return err
	}

	a.Result = persisted
	return nil
}
