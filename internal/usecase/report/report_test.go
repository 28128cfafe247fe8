package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

func TestReportsOverSeededData(t *testing.T) {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, repo.SeedDemo(ctx))

	e, err := NewGetEarnings(repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, e.Months, 1)
	assert.Equal(t, "2025-08", e.Months[0].Month)
	assert.Equal(t, 349.1, e.Revenue)

	clock := timezone.FixedClock{At: time.Date(2025, 8, 20, 7, 0, 0, 0, time.UTC)}
	d, err := NewGetDashboard(repo, clock).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Clients)
	assert.Equal(t, 3, d.Sales.Total)
	assert.Len(t, d.Upcoming, 2)
	assert.Equal(t, "09:00", d.Upcoming[0].Time)
	assert.Equal(t, -1150.9, d.CashFlow.Balance)
}
