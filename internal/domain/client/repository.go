package client

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListClients(ctx context.Context) ([]models.Client, error)
	SaveClients(ctx context.Context, items []models.Client) error
}
