package cashflow

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

// ======================================================
// CREATE
// ======================================================

type CreateEntry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCreateEntry(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CreateEntry {
	return &CreateEntry{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CreateEntry) Execute(
	ctx context.Context,
	actorID uint,
	in domain.Input,
) (*models.CashFlowEntry, error) {

	e, err := domain.Build(in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListCashFlow(ctx)
		if err != nil {
			return err
		}
		e.ID = collection.NextID(items)
		return uc.repo.SaveCashFlow(ctx, collection.Append(items, e))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "cashflow_created",
		Entity:   "cashflow",
		EntityID: &e.ID,
		Metadata: e,
	})

	return &e, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteEntry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteEntry(repo domain.Repository, audit *audit.Dispatcher) *DeleteEntry {
	return &DeleteEntry{repo: repo, audit: audit}
}

func (uc *DeleteEntry) Execute(ctx context.Context, actorID uint, id uint) error {
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListCashFlow(ctx)
		if err != nil {
			return err
		}
		items, ok := collection.Remove(items, id)
		if !ok {
			return httperr.ErrBusiness("cashflow_not_found")
		}
		return uc.repo.SaveCashFlow(ctx, items)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "cashflow_deleted",
		Entity:   "cashflow",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// READ
// ======================================================

type ListEntries struct {
	repo domain.Repository
}

func NewListEntries(repo domain.Repository) *ListEntries {
	return &ListEntries{repo: repo}
}

// Execute applies the filter. Bounds may be given as DD/MM/YYYY or ISO.
func (uc *ListEntries) Execute(ctx context.Context, f domain.Filter) ([]models.CashFlowEntry, error) {
	ve := httperr.NewValidation()
	f.From = normalizeBound(f.From, "de", ve)
	f.To = normalizeBound(f.To, "ate", ve)
	if err := ve.Err(); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListCashFlow(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(items), nil
}

// Balance totals the filtered entries.
func (uc *ListEntries) Balance(ctx context.Context, f domain.Filter) (domain.Totals, error) {
	items, err := uc.Execute(ctx, f)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.Balance(items), nil
}

func (uc *ListEntries) Monthly(ctx context.Context) ([]domain.MonthlyTotals, error) {
	items, err := uc.repo.ListCashFlow(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Monthly(items), nil
}

func normalizeBound(s, field string, ve *httperr.ValidationError) string {
	if s == "" {
		return ""
	}
	d, err := timezone.ParseDate(s)
	if err != nil {
		ve.Add(field, "Data inválida")
		return ""
	}
	return timezone.FormatISO(d)
}
