package appointment

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Repository interface {
	// -------- Lock --------
	Exclusive(ctx context.Context, fn func() error) error

	// -------- Appointment --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	SaveAppointments(ctx context.Context, items []models.Appointment) error

	// -------- Service (conflict lookup) --------
	ListServices(ctx context.Context) ([]models.Service, error)
}
