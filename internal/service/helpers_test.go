package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/members-ledger/internal/kvstore"
	"github.com/carson-networks/members-ledger/internal/repository"
	"github.com/carson-networks/members-ledger/internal/seed"
	"github.com/carson-networks/members-ledger/internal/storage"
	"github.com/carson-networks/members-ledger/internal/storage/member"
	"github.com/carson-networks/members-ledger/internal/storage/transaction"
)

// mockCollection is a mock for storage.CollectionReader.
type mockCollection[T repository.Entity] struct {
	mock.Mock
}

func (m *mockCollection[T]) GetAll(ctx context.Context) *repository.Single[[]T] {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]T)
	if err := args.Error(1); err != nil {
		return repository.Fail[[]T](err)
	}
	return repository.Just(rows)
}

func newStorageWith(t *testing.T, initial *seed.InitialData) *storage.Storage {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store, err := storage.NewStorage(context.Background(), kvstore.NewMemoryStore(), initial, logger)
	require.NoError(t, err)
	return store
}

func testInitialData() *seed.InitialData {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return &seed.InitialData{
		Members: []member.Member{
			{ID: 1, Name: "Ana"},
			{ID: 2, Name: "Luis"},
			{ID: 3, Name: "Marta"},
		},
		Transactions: []transaction.Transaction{
			{ID: 1, MemberID: 1, Description: "Supermercado", Amount: decimal.RequireFromString("84.30"), Date: day(5)},
			{ID: 2, MemberID: 2, Description: "Luz", Amount: decimal.RequireFromString("56.12"), Date: day(9)},
			{ID: 3, MemberID: 1, Description: "Farmacia", Amount: decimal.RequireFromString("18.75"), Date: day(20)},
		},
	}
}
