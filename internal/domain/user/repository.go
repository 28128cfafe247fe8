package user

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	Exclusive(ctx context.Context, fn func() error) error

	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, items []models.User) error

	// MigrateLegacyUsers takes the lock itself; never call it inside Exclusive.
	MigrateLegacyUsers(ctx context.Context) (bool, error)

	CurrentUser(ctx context.Context) (*models.SessionUser, error)
	SetCurrentUser(ctx context.Context, u models.SessionUser) error
	ClearCurrentUser(ctx context.Context) error

	// -------- Performance --------
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}
