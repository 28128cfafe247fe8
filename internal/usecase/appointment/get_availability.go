package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

type AvailabilityInput struct {
	Service string
	Date    string
}

type GetAvailability struct {
	repo  domain.Repository
	hours domain.WorkingHours
}

func NewGetAvailability(repo domain.Repository, hours domain.WorkingHours) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

// Execute lists the free slots of a service on one day.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	ve := httperr.NewValidation()
	if strings.TrimSpace(in.Service) == "" {
		ve.Add("servico", "Serviço é obrigatório")
	}
	d, err := timezone.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		ve.Add("data", "Data inválida")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	svc, ok := domain.FindService(services, strings.TrimSpace(in.Service))
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(svc, timezone.FormatISO(d), uc.hours, appointments, services)
}
