package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the filtered appointments ordered by date and time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	items, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Date != "" {
		if d, err := timezone.ParseDate(filter.Date); err == nil {
			filter.Date = timezone.FormatISO(d)
		}
	}

	out := filter.Apply(items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

type GetStats struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetStats(repo domain.Repository, clock timezone.Clock) *GetStats {
	return &GetStats{repo: repo, clock: clock}
}

func (uc *GetStats) Execute(ctx context.Context) (domain.Stats, error) {
	items, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(items, uc.clock.Now()), nil
}
