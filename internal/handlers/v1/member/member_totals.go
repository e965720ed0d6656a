package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/service"
)

// MemberTotal is the API response model for a member's transaction total.
type MemberTotal struct {
	MemberID         int    `json:"memberId" doc:"Member ID"`
	MemberName       string `json:"memberName" doc:"Member display name"`
	Total            string `json:"total" doc:"Decimal sum of the member's transactions"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions"`
}

// MemberTotalsOutput is the Huma output for member totals.
type MemberTotalsOutput struct {
	Body struct {
		Totals []MemberTotal `json:"totals" doc:"One entry per member"`
	}
}

// memberTotaler is the interface for computing member totals.
type memberTotaler interface {
	MemberTotals(ctx context.Context) ([]service.MemberTotal, error)
}

// MemberTotalsHandler handles GET /v1/members/totals.
type MemberTotalsHandler struct {
	TransactionService memberTotaler
}

// NewMemberTotalsHandler creates a new MemberTotalsHandler.
func NewMemberTotalsHandler(svc memberTotaler) *MemberTotalsHandler {
	return &MemberTotalsHandler{TransactionService: svc}
}

// Register registers the member totals endpoint with the Huma API.
func (h *MemberTotalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "member-totals",
		Method:      http.MethodGet,
		Path:        "/v1/members/totals",
		Summary:     "Member totals",
		Description: "Sums transaction amounts per member.",
		Tags:        []string{"Members"},
	}, h.handle)
}

func (h *MemberTotalsHandler) handle(ctx context.Context, _ *struct{}) (*MemberTotalsOutput, error) {
	logData := logging.GetLogData(ctx)

	totals, err := h.TransactionService.MemberTotals(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute member totals", err)
	}

	if logData != nil {
		logData.AddData("memberCount", len(totals))
	}

	out := &MemberTotalsOutput{}
	out.Body.Totals = make([]MemberTotal, len(totals))
	for i, total := range totals {
		out.Body.Totals[i] = MemberTotal{
			MemberID:         total.MemberID,
			MemberName:       total.MemberName,
			Total:            total.Total.StringFixed(2),
			TransactionCount: total.TransactionCount,
		}
	}
	return out, nil
}
