package cashflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

func TestCashFlowEntriesAndBalance(t *testing.T) {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	ctx := context.Background()
	clock := timezone.FixedClock{At: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)}
	create := NewCreateEntry(repo, nil, clock)

	e, err := create.Execute(ctx, 1, domain.Input{Kind: "entrada", Description: "Serviço avulso", Amount: "150,00"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), e.ID)
	assert.Equal(t, "20/08/2025", e.Date)

	_, err = create.Execute(ctx, 1, domain.Input{Kind: "saida", Description: "Aluguel", Amount: 100.5, Date: "2025-07-05"})
	require.NoError(t, err)

	list := NewListEntries(repo)
	totals, err := list.Balance(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{In: 150, Out: 100.5, Balance: 49.5}, totals)

	august, err := list.Execute(ctx, domain.Filter{From: "01/08/2025", To: "2025-08-31"})
	require.NoError(t, err)
	require.Len(t, august, 1)
	assert.Equal(t, "entrada", august[0].Kind)

	months, err := list.Monthly(ctx)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "2025-07", months[0].Month)

	_, err = list.Execute(ctx, domain.Filter{From: "ontem"})
	_, isValidation := httperr.AsValidation(err)
	assert.True(t, isValidation)

	require.NoError(t, NewDeleteEntry(repo, nil).Execute(ctx, 1, 2))
	err = NewDeleteEntry(repo, nil).Execute(ctx, 1, 2)
	assert.True(t, httperr.IsBusiness(err, "cashflow_not_found"))
}

func TestNonPositiveAmountRejected(t *testing.T) {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	_, err := NewCreateEntry(repo, nil, timezone.FixedClock{At: time.Now()}).Execute(context.Background(), 1, domain.Input{Kind: "entrada", Description: "x", Amount: 0})

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.True(t, ve.Has("valor"))
}
