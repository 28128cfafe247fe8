package appointment

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an appointment to status. Reactivating a cancelled
// appointment re-runs the conflict check, since its slot may be taken.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var ap models.Appointment
	var previous string
	err = uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListAppointments(ctx)
		if err != nil {
			return err
		}

		current, ok := collection.Find(items, id)
		if !ok {
			return httperr.ErrBusiness("appointment_not_found")
		}
		previous = current.Status

		ap = current
		ap.Status = string(next)

		if !domain.Status(previous).Active() && next.Active() {
			services, err := uc.repo.ListServices(ctx)
			if err != nil {
				return err
			}
			if err := assertNoConflict(ap, id, items, services); err != nil {
				return err
			}
		}

		items, _ = collection.Replace(items, ap)
		return uc.repo.SaveAppointments(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	action := "appointment_status_changed"
	if next == domain.StatusCancelled {
		action = "appointment_cancelled"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"de": previous, "para": ap.Status},
	})

	return &ap, nil
}
