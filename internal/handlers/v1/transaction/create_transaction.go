package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	MemberID    int    `json:"memberId" minimum:"1" doc:"ID of an existing member"`
	Description string `json:"description" maxLength:"500" doc:"Free-text description"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Date        string `json:"date,omitempty" doc:"Calendar date YYYY-MM-DD, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a transaction for an existing member.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput turns the request body into an AddTransaction action.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.AddTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(dateLayout, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return &actions.AddTransaction{
		MemberID:    input.Body.MemberID,
		Description: input.Body.Description,
		Amount:      amount,
		Date:        date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, actionError(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", action.Result.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: Transaction{
			ID:          action.Result.ID,
			MemberID:    action.Result.MemberID,
			Description: action.Result.Description,
			Amount:      action.Result.Amount.String(),
			Date:        action.Result.Date.Format(dateLayout),
		},
	}, nil
}
