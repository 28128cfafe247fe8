package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/service"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

func newRepo(t *testing.T) *repository.StoreRepository {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	require.NoError(t, repo.SaveUsers(context.Background(), []models.User{
		{ID: 1, Username: "admin", Role: "admin", CanSell: true, CanProvideServices: true},
		{ID: 2, Username: "caixa", Role: "vendedor", CanSell: true},
		{ID: 3, Username: "ana", Role: "vendedor", CanProvideServices: true, Specialization: "Cabelo"},
	}))
	return repo
}

func TestSaveResolvesProfessional(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	save := NewSaveService(repo, nil)

	id := uint(3)
	svc, err := save.Execute(ctx, 1, 0, domain.Input{Name: "Corte", Duration: "30", ProfessionalID: &id, Price: "45"})
	require.NoError(t, err)
	assert.Equal(t, "ana", svc.Professional)
	assert.Equal(t, 30, svc.Duration)

	seller := uint(2)
	_, err = save.Execute(ctx, 1, 0, domain.Input{Name: "Barba", Duration: 20, ProfessionalID: &seller, Price: 30})
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.True(t, ve.Has("profissionalId"))

	_, err = save.Execute(ctx, 1, 9, domain.Input{Name: "Barba", Duration: 20, Professional: "ana", Price: 30})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestListStatsAndProfessionals(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	save := NewSaveService(repo, nil)

	_, err := save.Execute(ctx, 1, 0, domain.Input{Name: "Corte", Duration: 30, Professional: "ana", Price: 40})
	require.NoError(t, err)
	_, err = save.Execute(ctx, 1, 0, domain.Input{Name: "Consultoria", Duration: 60, Professional: "admin", Price: 100})
	require.NoError(t, err)

	list := NewListServices(repo)
	got, err := list.Execute(ctx, domain.Filter{Professional: "ana"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	st, err := list.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 2, AverageDuration: 45, AveragePrice: 70, UniqueProfessionals: 2}, st)

	pros, err := list.Professionals(ctx)
	require.NoError(t, err)
	assert.Len(t, pros, 2)

	require.NoError(t, NewDeleteService(repo, nil).Execute(ctx, 1, 1))
}
