package appointment

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the appointment in place. An empty status keeps the
// current one.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListAppointments(ctx)
		if err != nil {
			return err
		}

		current, ok := collection.Find(items, id)
		if !ok {
			return httperr.ErrBusiness("appointment_not_found")
		}
		if in.Status == "" {
			in.Status = current.Status
		}

		ap, err = domain.Build(in)
		if err != nil {
			return err
		}
		ap.ID = id

		services, err := uc.repo.ListServices(ctx)
		if err != nil {
			return err
		}
		if err := assertNoConflict(ap, id, items, services); err != nil {
			return err
		}

		items, _ = collection.Replace(items, ap)
		return uc.repo.SaveAppointments(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: ap,
	})

	return &ap, nil
}
