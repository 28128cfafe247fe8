package appointment

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actorID uint,
	in domain.Input,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Formulário
	// --------------------------------------------------
	ap, err := domain.Build(in)
	if err != nil {
		return nil, err
	}

	err = uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListAppointments(ctx)
		if err != nil {
			return err
		}
		services, err := uc.repo.ListServices(ctx)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 2. Conflito de horário
		// --------------------------------------------------
		if err := assertNoConflict(ap, 0, items, services); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Persistência
		// --------------------------------------------------
		ap.ID = collection.NextID(items)
		return uc.repo.SaveAppointments(ctx, collection.Append(items, ap))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: ap,
	})

	return &ap, nil
}

// assertNoConflict only checks appointments that will occupy the slot.
func assertNoConflict(
	ap models.Appointment,
	editingID uint,
	items []models.Appointment,
	services []models.Service,
) error {
	if !domain.Status(ap.Status).Active() {
		return nil
	}
	if c := domain.FindConflict(ap, editingID, items, services); c != nil {
		return httperr.ErrBusinessWith("time_conflict", c)
	}
	return nil
}
