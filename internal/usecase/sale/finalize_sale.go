package sale

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/sale"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type FinalizeSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewFinalizeSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *FinalizeSale {
	return &FinalizeSale{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute records the sale for sellerID. The cash flow, sales and products
// collections are written one after the other; a failed write does not
// roll back the earlier ones.
func (uc *FinalizeSale) Execute(
	ctx context.Context,
	sellerID uint,
	in domain.Input,
) (*models.Sale, error) {

	var res domain.Result
	err := uc.repo.Exclusive(ctx, func() error {
		// --------------------------------------------------
		// 1. Snapshot
		// --------------------------------------------------
		var snap domain.Snapshot
		var err error
		if snap.Sales, err = uc.repo.ListSales(ctx); err != nil {
			return err
		}
		if snap.Products, err = uc.repo.ListProducts(ctx); err != nil {
			return err
		}
		if snap.CashFlow, err = uc.repo.ListCashFlow(ctx); err != nil {
			return err
		}
		if snap.Clients, err = uc.repo.ListClients(ctx); err != nil {
			return err
		}

		// --------------------------------------------------
		// 2. Regra
		// --------------------------------------------------
		res, err = domain.Finalize(snap, in, sellerID, uc.clock.Now())
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Escritas
		// --------------------------------------------------
		if err := uc.repo.SaveCashFlow(ctx, res.CashFlow); err != nil {
			return err
		}
		if err := uc.repo.SaveSales(ctx, res.Sales); err != nil {
			return err
		}
		return uc.repo.SaveProducts(ctx, res.Products)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &sellerID,
		Action:   "sale_created",
		Entity:   "sale",
		EntityID: &res.Sale.ID,
		Metadata: map[string]any{"total": res.Sale.Total, "itens": res.Sale.Items},
	})

	return &res.Sale, nil
}

// ======================================================
// READ
// ======================================================

type ListSales struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListSales(repo domain.Repository, clock timezone.Clock) *ListSales {
	return &ListSales{repo: repo, clock: clock}
}

// Execute returns the sales, newest first, optionally for one seller.
func (uc *ListSales) Execute(ctx context.Context, sellerID uint) ([]models.Sale, error) {
	items, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Sale, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		if sellerID != 0 && items[i].SellerID != sellerID {
			continue
		}
		out = append(out, items[i])
	}
	return out, nil
}

func (uc *ListSales) Get(ctx context.Context, id uint) (*models.Sale, error) {
	items, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	s, ok := collection.Find(items, id)
	if !ok {
		return nil, httperr.ErrBusiness("sale_not_found")
	}
	return &s, nil
}

func (uc *ListSales) Stats(ctx context.Context) (domain.Stats, error) {
	items, err := uc.repo.ListSales(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(items, uc.clock.Now()), nil
}
