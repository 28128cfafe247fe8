package cashflow

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListCashFlow(ctx context.Context) ([]models.CashFlowEntry, error)
	SaveCashFlow(ctx context.Context, items []models.CashFlowEntry) error
}
