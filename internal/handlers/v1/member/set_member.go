package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/operator/actions"
)

// SetMemberInput is the Huma input for upserting a member.
type SetMemberInput struct {
	ID   int `path:"id" minimum:"1" doc:"Member ID"`
	Body CreateMemberBody
}

// SetMemberOutput is the Huma output for upserting a member.
type SetMemberOutput struct {
	Body Member
}

// SetMemberHandler handles PUT /v1/member/{id}.
type SetMemberHandler struct {
	Operator actionProcessor
}

// NewSetMemberHandler creates a new SetMemberHandler.
func NewSetMemberHandler(op actionProcessor) *SetMemberHandler {
	return &SetMemberHandler{Operator: op}
}

// Register registers the set member endpoint with the Huma API.
func (h *SetMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-member",
		Method:      http.MethodPut,
		Path:        "/v1/member/{id}",
		Summary:     "Create or replace a member",
		Description: "Stores the member under the given ID, replacing any existing member with that ID.",
		Tags:        []string{"Members"},
	}, h.handle)
}

func (h *SetMemberHandler) handle(ctx context.Context, input *SetMemberInput) (*SetMemberOutput, error) {
	action := &actions.SetMember{ID: input.ID, Name: input.Body.Name}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, actionError(err, "failed to set member")
	}

	return &SetMemberOutput{
		Body: Member{ID: action.Result.ID, Name: action.Result.Name},
	}, nil
}
