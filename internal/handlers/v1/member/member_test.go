package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/members-ledger/internal/operator/actions"
	"github.com/carson-networks/members-ledger/internal/service"
	storagemember "github.com/carson-networks/members-ledger/internal/storage/member"
)

type mockMemberService struct {
	mock.Mock
}

func (m *mockMemberService) ListMembers(ctx context.Context) ([]service.Member, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]service.Member)
	return members, args.Error(1)
}

func (m *mockMemberService) GetMember(ctx context.Context, id int) (*service.Member, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*service.Member)
	return found, args.Error(1)
}

func (m *mockMemberService) MemberTotals(ctx context.Context) ([]service.MemberTotal, error) {
	args := m.Called(ctx)
	totals, _ := args.Get(0).([]service.MemberTotal)
	return totals, args.Error(1)
}

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc *mockMemberService, op *mockOperator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListMembersHandler(svc).Register(api)
	NewGetMemberHandler(svc).Register(api)
	NewMemberTotalsHandler(svc).Register(api)
	NewCreateMemberHandler(op).Register(api)
	NewSetMemberHandler(op).Register(api)
	return api
}

func TestHTTP_ListMembers_Success(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("ListMembers", mock.Anything).Return([]service.Member{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Luis"},
	}, nil)

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/members")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListMembersResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []Member{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}}, body.Members)
	svc.AssertExpectations(t)
}

func TestHTTP_ListMembers_Empty(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("ListMembers", mock.Anything).Return([]service.Member{}, nil)

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/members")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListMembersResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Members)
}

func TestHTTP_ListMembers_ServiceError(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("ListMembers", mock.Anything).Return(nil, errors.New("store unavailable"))

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/members")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetMember_Success(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("GetMember", mock.Anything, 3).Return(&service.Member{ID: 3, Name: "Marta"}, nil)

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/member/3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Member
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Member{ID: 3, Name: "Marta"}, body)
}

func TestHTTP_GetMember_NotFound(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("GetMember", mock.Anything, 42).Return(nil, storagemember.ErrNotFound)

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/member/42")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateMember_Success(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.AddMember) bool {
		return a.Name == "Marta"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.AddMember).Result = storagemember.Member{ID: 4, Name: "Marta"}
	}).Return(nil)

	resp := newTestAPI(t, new(mockMemberService), op).Post("/v1/member", CreateMemberBody{Name: "Marta"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Member
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Member{ID: 4, Name: "Marta"}, body)
	op.AssertExpectations(t)
}

func TestHTTP_CreateMember_EmptyName(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, new(mockMemberService), op).Post("/v1/member", CreateMemberBody{Name: ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateMember_BlankNameRejectedByAction(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: member name is required", actions.ErrInvalidInput))

	resp := newTestAPI(t, new(mockMemberService), op).Post("/v1/member", CreateMemberBody{Name: "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateMember_OperatorError(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))

	resp := newTestAPI(t, new(mockMemberService), op).Post("/v1/member", CreateMemberBody{Name: "Marta"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_SetMember_Success(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.SetMember) bool {
		return a.ID == 2 && a.Name == "Luis P."
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.SetMember).Result = storagemember.Member{ID: 2, Name: "Luis P."}
	}).Return(nil)

	resp := newTestAPI(t, new(mockMemberService), op).Put("/v1/member/2", CreateMemberBody{Name: "Luis P."})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Member
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Member{ID: 2, Name: "Luis P."}, body)
	op.AssertExpectations(t)
}

func TestHTTP_SetMember_BadID(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, new(mockMemberService), op).Put("/v1/member/0", CreateMemberBody{Name: "Nobody"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_MemberTotals_Success(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("MemberTotals", mock.Anything).Return([]service.MemberTotal{
		{MemberID: 1, MemberName: "Ana", Total: decimal.RequireFromString("12.5"), TransactionCount: 2},
		{MemberID: 2, MemberName: "Luis", Total: decimal.Zero, TransactionCount: 0},
	}, nil)

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/members/totals")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Totals []MemberTotal `json:"totals"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Totals, 2)
	assert.Equal(t, "12.50", body.Totals[0].Total)
	assert.Equal(t, 2, body.Totals[0].TransactionCount)
	assert.Equal(t, "0.00", body.Totals[1].Total)
}

func TestHTTP_MemberTotals_ServiceError(t *testing.T) {
	svc := new(mockMemberService)
	svc.On("MemberTotals", mock.Anything).Return(nil, errors.New("store unavailable"))

	resp := newTestAPI(t, svc, new(mockOperator)).Get("/v1/members/totals")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
