package report

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCashFlow(ctx context.Context) ([]models.CashFlowEntry, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}
