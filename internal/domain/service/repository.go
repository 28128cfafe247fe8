package service

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListServices(ctx context.Context) ([]models.Service, error)
	SaveServices(ctx context.Context, items []models.Service) error

	ListUsers(ctx context.Context) ([]models.User, error)
}
