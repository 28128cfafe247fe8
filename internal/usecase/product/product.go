package product

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/product"
	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// ======================================================
// SAVE
// ======================================================

type SaveProduct struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveProduct(repo domain.Repository, audit *audit.Dispatcher) *SaveProduct {
	return &SaveProduct{repo: repo, audit: audit}
}

// Execute creates the product when id is 0 and replaces it otherwise.
func (uc *SaveProduct) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*dto.ProductDTO, error) {

	p, err := domain.Build(in)
	if err != nil {
		return nil, err
	}

	err = uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListProducts(ctx)
		if err != nil {
			return err
		}

		if id == 0 {
			p.ID = collection.NextID(items)
			return uc.repo.SaveProducts(ctx, collection.Append(items, p))
		}

		p.ID = id
		items, ok := collection.Replace(items, p)
		if !ok {
			return httperr.ErrBusiness("product_not_found")
		}
		return uc.repo.SaveProducts(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	action := "product_updated"
	if id == 0 {
		action = "product_created"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "product",
		EntityID: &p.ID,
		Metadata: p,
	})

	out := toDTO(p)
	return &out, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteProduct struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteProduct(repo domain.Repository, audit *audit.Dispatcher) *DeleteProduct {
	return &DeleteProduct{repo: repo, audit: audit}
}

func (uc *DeleteProduct) Execute(ctx context.Context, actorID uint, id uint) error {
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListProducts(ctx)
		if err != nil {
			return err
		}
		items, ok := collection.Remove(items, id)
		if !ok {
			return httperr.ErrBusiness("product_not_found")
		}
		return uc.repo.SaveProducts(ctx, items)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// READ
// ======================================================

type ListProducts struct {
	repo domain.Repository
}

func NewListProducts(repo domain.Repository) *ListProducts {
	return &ListProducts{repo: repo}
}

// Execute filters by name or code; lowStock keeps only products at or
// under the threshold.
func (uc *ListProducts) Execute(ctx context.Context, query string, lowStock bool) ([]dto.ProductDTO, error) {
	items, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	items = domain.Filter(items, query)
	if lowStock {
		items = domain.LowStock(items)
	}

	out := make([]dto.ProductDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toDTO(p))
	}
	return out, nil
}

func (uc *ListProducts) Get(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	items, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := collection.Find(items, id)
	if !ok {
		return nil, httperr.ErrBusiness("product_not_found")
	}
	out := toDTO(p)
	return &out, nil
}

func (uc *ListProducts) Stats(ctx context.Context) (domain.Stats, error) {
	items, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(items), nil
}

func toDTO(p models.Product) dto.ProductDTO {
	return dto.ProductDTO{
		Product:     p,
		StockStatus: string(domain.StatusOf(p.Quantity)),
		StockValue:  money.Float(money.Times(p.UnitPrice, p.Quantity)),
	}
}
