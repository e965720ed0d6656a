package member

import "errors"

// ErrNotFound is returned when a member ID does not exist.
var ErrNotFound = errors.New("member not found")

// StorageKey is the local storage key holding the members collection.
const StorageKey = "members"

// Member represents a member record.
type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m Member) Identifier() int {
	return m.ID
}

// NextID returns one more than the largest ID in members, or 1 when empty.
func NextID(members []Member) int {
	next := 1
	for _, m := range members {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	return next
}

// FindByID returns the member with the given ID, or nil.
func FindByID(members []Member, id int) *Member {
	for i := range members {
		if members[i].ID == id {
			return &members[i]
		}
	}
	return nil
}
