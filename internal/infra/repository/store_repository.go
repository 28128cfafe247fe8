package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/client"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/product"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/report"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/sale"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/service"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// Storage keys, identical to the ones the browser dashboard used.
const (
	KeyClients      = "clientes"
	KeyProducts     = "produtos"
	KeySales        = "vendas"
	KeyCashFlow     = "fluxoCaixa"
	KeyLegacyUsers  = "vendedores"
	KeyUsers        = "usuarios"
	KeyAppointments = "agendamentos"
	KeyServices     = "servicos"
	KeyCurrentUser  = "currentUser"
	KeyAudit        = "auditoria"
)

// ErrMalformed marks a stored value that is not valid JSON for its key.
var ErrMalformed = errors.New("malformed stored data")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StoreRepository reads and writes whole collections in a kvstore.Store.
type StoreRepository struct {
	store  kvstore.Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewStoreRepository(store kvstore.Store, logger *zap.Logger) *StoreRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreRepository{store: store, logger: logger}
}

// Exclusive runs fn while holding the single writer lock. fn must not
// call Exclusive again.
func (r *StoreRepository) Exclusive(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn()
}

// --------------------------------------------------
// Codec
// --------------------------------------------------

// load returns an empty collection when the key is absent.
func load[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	items := []T{}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return items, nil
	}

	if err := json.UnmarshalFromString(raw, &items); err != nil {
		return nil, pkgerrors.Wrapf(ErrMalformed, "key %s: %v", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalToString(items)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode %s", key)
	}
	return store.Set(ctx, key, raw)
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *StoreRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return load[models.Client](ctx, r.store, KeyClients)
}

func (r *StoreRepository) SaveClients(ctx context.Context, items []models.Client) error {
	return save(ctx, r.store, KeyClients, items)
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (r *StoreRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return load[models.Product](ctx, r.store, KeyProducts)
}

func (r *StoreRepository) SaveProducts(ctx context.Context, items []models.Product) error {
	return save(ctx, r.store, KeyProducts, items)
}

// --------------------------------------------------
// Sales
// --------------------------------------------------

func (r *StoreRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	return load[models.Sale](ctx, r.store, KeySales)
}

func (r *StoreRepository) SaveSales(ctx context.Context, items []models.Sale) error {
	return save(ctx, r.store, KeySales, items)
}

// --------------------------------------------------
// Cash flow
// --------------------------------------------------

func (r *StoreRepository) ListCashFlow(ctx context.Context) ([]models.CashFlowEntry, error) {
	return load[models.CashFlowEntry](ctx, r.store, KeyCashFlow)
}

func (r *StoreRepository) SaveCashFlow(ctx context.Context, items []models.CashFlowEntry) error {
	return save(ctx, r.store, KeyCashFlow, items)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *StoreRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return load[models.Appointment](ctx, r.store, KeyAppointments)
}

func (r *StoreRepository) SaveAppointments(ctx context.Context, items []models.Appointment) error {
	return save(ctx, r.store, KeyAppointments, items)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *StoreRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	return load[models.Service](ctx, r.store, KeyServices)
}

func (r *StoreRepository) SaveServices(ctx context.Context, items []models.Service) error {
	return save(ctx, r.store, KeyServices, items)
}

// --------------------------------------------------
// Users / session
// --------------------------------------------------

func (r *StoreRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return load[models.User](ctx, r.store, KeyUsers)
}

func (r *StoreRepository) SaveUsers(ctx context.Context, items []models.User) error {
	return save(ctx, r.store, KeyUsers, items)
}

func (r *StoreRepository) ListLegacyUsers(ctx context.Context) ([]models.LegacySeller, error) {
	return load[models.LegacySeller](ctx, r.store, KeyLegacyUsers)
}

// MigrateLegacyUsers copies "vendedores" into "usuarios" while the latter
// is empty. When both hold data nothing is merged and a warning is logged.
func (r *StoreRepository) MigrateLegacyUsers(ctx context.Context) (bool, error) {
	migrated := false
	err := r.Exclusive(ctx, func() error {
		legacy, err := r.ListLegacyUsers(ctx)
		if err != nil {
			return err
		}
		users, err := r.ListUsers(ctx)
		if err != nil {
			return err
		}

		out, ok := user.MigrateLegacy(legacy, users)
		if !ok {
			if len(legacy) > 0 && len(users) > 0 && divergent(legacy, users) {
				r.logger.Warn("legacy users differ from current users, not merging",
					zap.Int("legacy", len(legacy)),
					zap.Int("users", len(users)),
				)
			}
			return nil
		}

		if err := r.SaveUsers(ctx, out); err != nil {
			return err
		}
		migrated = true
		r.logger.Info("legacy users migrated", zap.Int("count", len(out)))
		return nil
	})
	return migrated, err
}

func divergent(legacy []models.LegacySeller, users []models.User) bool {
	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[u.Username] = struct{}{}
	}
	for _, l := range legacy {
		if _, ok := known[l.Username]; !ok {
			return true
		}
	}
	return false
}

// CurrentUser returns nil when nobody is logged in.
func (r *StoreRepository) CurrentUser(ctx context.Context) (*models.SessionUser, error) {
	raw, ok, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return nil, nil
	}

	var u models.SessionUser
	if err := json.UnmarshalFromString(raw, &u); err != nil {
		return nil, pkgerrors.Wrapf(ErrMalformed, "key %s: %v", KeyCurrentUser, err)
	}
	return &u, nil
}

func (r *StoreRepository) SetCurrentUser(ctx context.Context, u models.SessionUser) error {
	raw, err := json.MarshalToString(u)
	if err != nil {
		return pkgerrors.Wrap(err, "encode current user")
	}
	return r.store.Set(ctx, KeyCurrentUser, raw)
}

func (r *StoreRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, KeyCurrentUser)
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

// AppendAudit adds one entry, keeping at most maxAuditEntries.
func (r *StoreRepository) AppendAudit(ctx context.Context, entry models.AuditLog) error {
	return r.Exclusive(ctx, func() error {
		logs, err := r.ListAudit(ctx)
		if err != nil {
			return err
		}
		logs = append(logs, entry)
		if len(logs) > maxAuditEntries {
			logs = logs[len(logs)-maxAuditEntries:]
		}
		return save(ctx, r.store, KeyAudit, logs)
	})
}

const maxAuditEntries = 5000

func (r *StoreRepository) ListAudit(ctx context.Context) ([]models.AuditLog, error) {
	return load[models.AuditLog](ctx, r.store, KeyAudit)
}

// Raw exposes a key's stored value, for diagnostics and tests.
func (r *StoreRepository) Raw(ctx context.Context, key string) (string, bool, error) {
	return r.store.Get(ctx, key)
}

// Compile-time check
var (
	_ appointment.Repository = (*StoreRepository)(nil)
	_ cashflow.Repository    = (*StoreRepository)(nil)
	_ client.Repository      = (*StoreRepository)(nil)
	_ product.Repository     = (*StoreRepository)(nil)
	_ report.Repository      = (*StoreRepository)(nil)
	_ sale.Repository        = (*StoreRepository)(nil)
	_ service.Repository     = (*StoreRepository)(nil)
	_ user.Repository        = (*StoreRepository)(nil)
)
