package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

func newRepo(t *testing.T) (*StoreRepository, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	return NewStoreRepository(store, zaptest.NewLogger(t)), store
}

func TestAbsentKeyIsEmptyCollection(t *testing.T) {
	repo, _ := newRepo(t)

	clients, err := repo.ListClients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestNullOrBlankValueIsEmptyCollection(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyProducts, "null"))
	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMalformedValueIsStorageError(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeySales, `{"not":"a list"`))

	_, err := repo.ListSales(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestRoundTripKeepsStoredLayout(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCashFlow(ctx, []models.CashFlowEntry{
		{ID: 1, Kind: "entrada", Description: "Venda #1", Amount: 59.8, Date: "10/08/2025"},
	}))

	raw, ok, err := store.Get(ctx, KeyCashFlow)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"tipo":"entrada","descricao":"Venda #1","valor":59.8,"data":"10/08/2025"}]`, raw)

	entries, err := repo.ListCashFlow(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Venda #1", entries[0].Description)
}

func TestSaleWithoutClientStoresNull(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSales(ctx, []models.Sale{{ID: 1, Date: "01/01/2025", Items: []models.SaleItem{{ProductID: 1, Quantity: 1}}, Total: 1, PaymentMethod: "PIX", SellerID: 3}}))

	raw, _, _ := store.Get(ctx, KeySales)
	assert.Contains(t, raw, `"clienteId":null`)
}

func TestMigrateLegacyUsers(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyLegacyUsers, `[{"id":3,"username":"admin","password":"admin","role":"admin"}]`))

	migrated, err := repo.MigrateLegacyUsers(ctx)
	require.NoError(t, err)
	assert.True(t, migrated)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].CanSell)
	assert.False(t, users[0].CanProvideServices)

	migrated, err = repo.MigrateLegacyUsers(ctx)
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestCurrentUser(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	u, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, repo.SetCurrentUser(ctx, models.SessionUser{ID: 3, Username: "admin", Role: "admin"}))
	u, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	require.NoError(t, repo.ClearCurrentUser(ctx))
	u, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSeedDemoOnlyFillsAbsentKeys(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyClients, `[]`))
	require.NoError(t, repo.SeedDemo(ctx))

	clients, err := repo.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)

	legacy, err := repo.ListLegacyUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, legacy, 3)

	require.NoError(t, repo.SaveProducts(ctx, products[:1]))
	require.NoError(t, repo.SeedDemo(ctx))
	products, _ = repo.ListProducts(ctx)
	assert.Len(t, products, 1)
}

func TestAppendAudit(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAudit(ctx, models.AuditLog{ID: "a", Action: "client_created", CreatedAt: time.Now()}))
	require.NoError(t, repo.AppendAudit(ctx, models.AuditLog{ID: "b", Action: "client_deleted", CreatedAt: time.Now()}))

	logs, err := repo.ListAudit(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "b", logs[1].ID)
}

func TestBoltBackedRepository(t *testing.T) {
	store, err := kvstore.OpenBolt(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	defer store.Close()

	repo := NewStoreRepository(store, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveAppointments(ctx, []models.Appointment{{ID: 1, Client: "Maria", Service: "Corte", Date: "2025-01-02", Time: "09:00", Status: "agendado"}}))

	got, err := repo.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria", got[0].Client)
}

func TestExclusiveHonoursCancelledContext(t *testing.T) {
	repo, _ := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := repo.Exclusive(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
