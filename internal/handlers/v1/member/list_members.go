package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/service"
)

// ListMembersResponseBody is the response body for listing members.
type ListMembersResponseBody struct {
	Members []Member `json:"members" doc:"All members in insertion order"`
}

// ListMembersOutput is the Huma output for listing members.
type ListMembersOutput struct {
	Body ListMembersResponseBody
}

// memberLister is the interface for listing members.
type memberLister interface {
	ListMembers(ctx context.Context) ([]service.Member, error)
}

// ListMembersHandler handles GET /v1/members.
type ListMembersHandler struct {
	MemberService memberLister
}

// NewListMembersHandler creates a new ListMembersHandler.
func NewListMembersHandler(svc memberLister) *ListMembersHandler {
	return &ListMembersHandler{MemberService: svc}
}

// Register registers the list members endpoint with the Huma API.
func (h *ListMembersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-members",
		Method:      http.MethodGet,
		Path:        "/v1/members",
		Summary:     "List members",
		Description: "Returns every member.",
		Tags:        []string{"Members"},
	}, h.handle)
}

func (h *ListMembersHandler) handle(ctx context.Context, _ *struct{}) (*ListMembersOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listMembersMs")
	}
	members, err := h.MemberService.ListMembers(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list members", err)
	}

	if logData != nil {
		logData.AddData("memberCount", len(members))
	}

	resp := ListMembersResponseBody{Members: make([]Member, len(members))}
	for i, m := range members {
		resp.Members[i] = Member{ID: m.ID, Name: m.Name}
	}
	return &ListMembersOutput{Body: resp}, nil
}
