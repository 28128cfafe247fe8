package sale

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListSales(ctx context.Context) ([]models.Sale, error)
	SaveSales(ctx context.Context, items []models.Sale) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, items []models.Product) error

	ListCashFlow(ctx context.Context) ([]models.CashFlowEntry, error)
	SaveCashFlow(ctx context.Context, items []models.CashFlowEntry) error

	ListClients(ctx context.Context) ([]models.Client, error)
}
