package appointment

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, actorID uint, id uint) error {
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListAppointments(ctx)
		if err != nil {
			return err
		}
		items, ok := collection.Remove(items, id)
		if !ok {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return uc.repo.SaveAppointments(ctx, items)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})
	return nil
}
