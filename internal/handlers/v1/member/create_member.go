package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/operator/actions"
)

// CreateMemberBody is the request body for adding a member.
type CreateMemberBody struct {
	Name string `json:"name" minLength:"1" maxLength:"200" doc:"Display name"`
}

// CreateMemberInput is the Huma input for adding a member.
type CreateMemberInput struct {
	Body CreateMemberBody
}

// CreateMemberOutput is the Huma output for adding a member.
type CreateMemberOutput struct {
	Status int
	Body   Member
}

// CreateMemberHandler handles POST /v1/member.
type CreateMemberHandler struct {
	Operator actionProcessor
}

// NewCreateMemberHandler creates a new CreateMemberHandler.
func NewCreateMemberHandler(op actionProcessor) *CreateMemberHandler {
	return &CreateMemberHandler{Operator: op}
}

// Register registers the create member endpoint with the Huma API.
func (h *CreateMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-member",
		Method:        http.MethodPost,
		Path:          "/v1/member",
		Summary:       "Add a member",
		Description:   "Adds a member under the next free ID.",
		Tags:          []string{"Members"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateMemberHandler) handle(ctx context.Context, input *CreateMemberInput) (*CreateMemberOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.AddMember{Name: input.Body.Name}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createMemberMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, actionError(err, "failed to add member")
	}

	if logData != nil {
		logData.AddData("memberID", action.Result.ID)
	}

	return &CreateMemberOutput{
		Status: http.StatusCreated,
		Body:   Member{ID: action.Result.ID, Name: action.Result.Name},
	}, nil
}
