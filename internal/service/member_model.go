package service

import (
	"github.com/carson-networks/members-ledger/internal/storage/member"
)

// Member represents a member in the service layer.
type Member struct {
	ID   int
	Name string
}

func memberFromStorage(m member.Member) Member {
	return Member{ID: m.ID, Name: m.Name}
}
