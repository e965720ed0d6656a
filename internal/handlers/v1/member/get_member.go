package member

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/service"
	storagemember "github.com/carson-networks/members-ledger/internal/storage/member"
)

// GetMemberInput is the Huma input for fetching one member.
type GetMemberInput struct {
	ID int `path:"id" minimum:"1" doc:"Member ID"`
}

// GetMemberOutput is the Huma output for fetching one member.
type GetMemberOutput struct {
	Body Member
}

type memberGetter interface {
	GetMember(ctx context.Context, id int) (*service.Member, error)
}

// GetMemberHandler handles GET /v1/member/{id}.
type GetMemberHandler struct {
	MemberService memberGetter
}

// NewGetMemberHandler creates a new GetMemberHandler.
func NewGetMemberHandler(svc memberGetter) *GetMemberHandler {
	return &GetMemberHandler{MemberService: svc}
}

// Register registers the get member endpoint with the Huma API.
func (h *GetMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-member",
		Method:      http.MethodGet,
		Path:        "/v1/member/{id}",
		Summary:     "Get a member",
		Tags:        []string{"Members"},
	}, h.handle)
}

func (h *GetMemberHandler) handle(ctx context.Context, input *GetMemberInput) (*GetMemberOutput, error) {
	m, err := h.MemberService.GetMember(ctx, input.ID)
	if errors.Is(err, storagemember.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get member", err)
	}

	return &GetMemberOutput{Body: Member{ID: m.ID, Name: m.Name}}, nil
}
