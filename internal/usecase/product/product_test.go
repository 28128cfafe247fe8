package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/product"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
)

func TestProductLifecycle(t *testing.T) {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	ctx := context.Background()
	save := NewSaveProduct(repo, nil)
	list := NewListProducts(repo)

	p, err := save.Execute(ctx, 1, 0, domain.Input{Name: "Camiseta", Code: "P1", Quantity: "12", UnitPrice: "29,90"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, 12, p.Quantity)
	assert.Equal(t, 29.9, p.UnitPrice)
	assert.Equal(t, "em_estoque", p.StockStatus)
	assert.Equal(t, 358.8, p.StockValue)

	_, err = save.Execute(ctx, 1, 0, domain.Input{Name: "Meia", Code: "P2", Quantity: 0, UnitPrice: 9.9})
	require.NoError(t, err)

	low, err := list.Execute(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "sem_estoque", low[0].StockStatus)

	upd, err := save.Execute(ctx, 1, 1, domain.Input{Name: "Camiseta", Code: "P1", Quantity: 5, UnitPrice: 29.9})
	require.NoError(t, err)
	assert.Equal(t, "estoque_baixo", upd.StockStatus)

	st, err := list.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Total)

	require.NoError(t, NewDeleteProduct(repo, nil).Execute(ctx, 1, 2))
	_, err = list.Get(ctx, 2)
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))
}

func TestProductValidation(t *testing.T) {
	repo := repository.NewStoreRepository(kvstore.NewMemory(), zaptest.NewLogger(t))
	_, err := NewSaveProduct(repo, nil).Execute(context.Background(), 1, 0, domain.Input{Quantity: "-1", UnitPrice: "abc"})

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.True(t, ve.Has("nome"))
	assert.True(t, ve.Has("quantidade"))
	assert.True(t, ve.Has("precoUnitario"))
}
