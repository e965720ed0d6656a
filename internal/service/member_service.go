package service

import (
	"context"

	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/storage"
	"github.com/carson-networks/members-ledger/internal/storage/member"
)

// MemberService handles member business logic.
type MemberService struct {
	reader *storage.Reader
}

// NewMemberService creates a new MemberService.
func NewMemberService(reader *storage.Reader) *MemberService {
	return &MemberService{reader: reader}
}

// ListMembers returns every member in insertion order.
func (s *MemberService) ListMembers(ctx context.Context) ([]Member, error) {
	return repository.Map(s.reader.Members.GetAll(ctx), func(rows []member.Member) []Member {
		members := make([]Member, len(rows))
		for i, row := range rows {
			members[i] = memberFromStorage(row)
		}
		return members
	}).Await(ctx)
}

// GetMember returns the member with id, or member.ErrNotFound.
func (s *MemberService) GetMember(ctx context.Context, id int) (*Member, error) {
	rows, err := s.reader.Members.GetAll(ctx).Await(ctx)
	if err != nil {
		return nil, err
	}

	row := member.FindByID(rows, id)
	if row == nil {
		return nil, member.ErrNotFound
	}
	m := memberFromStorage(*row)
	return &m, nil
}
