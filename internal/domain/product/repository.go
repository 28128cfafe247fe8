package product

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, items []models.Product) error
}
