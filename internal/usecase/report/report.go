package report

import (
	"context"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/report"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

type GetEarnings struct {
	repo domain.Repository
}

func NewGetEarnings(repo domain.Repository) *GetEarnings {
	return &GetEarnings{repo: repo}
}

func (uc *GetEarnings) Execute(ctx context.Context) (domain.Earnings, error) {
	sales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return domain.Earnings{}, err
	}
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return domain.Earnings{}, err
	}
	return domain.ComputeEarnings(sales, products), nil
}

type GetDashboard struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetDashboard(repo domain.Repository, clock timezone.Clock) *GetDashboard {
	return &GetDashboard{repo: repo, clock: clock}
}

func (uc *GetDashboard) Execute(ctx context.Context) (domain.Dashboard, error) {
	var (
		s   domain.Snapshot
		err error
	)
	if s.Clients, err = uc.repo.ListClients(ctx); err != nil {
		return domain.Dashboard{}, err
	}
	if s.Sales, err = uc.repo.ListSales(ctx); err != nil {
		return domain.Dashboard{}, err
	}
	if s.Products, err = uc.repo.ListProducts(ctx); err != nil {
		return domain.Dashboard{}, err
	}
	if s.CashFlow, err = uc.repo.ListCashFlow(ctx); err != nil {
		return domain.Dashboard{}, err
	}
	if s.Appointments, err = uc.repo.ListAppointments(ctx); err != nil {
		return domain.Dashboard{}, err
	}
	return domain.ComputeDashboard(s, uc.clock.Now()), nil
}
