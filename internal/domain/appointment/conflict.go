package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// Conflict identifies the existing appointment that overlaps a candidate.
type Conflict struct {
	Date    string `json:"data"`
	Time    string `json:"hora"`
	Service string `json:"servico"`
}

// ToMinutes converts HH:MM into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 || len(m) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return hours*60 + mins, nil
}

// FromMinutes is the inverse of ToMinutes.
func FromMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FindService resolves a service by its exact name.
func FindService(services []models.Service, name string) (models.Service, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return models.Service{}, false
}

// FindConflict returns the first existing appointment whose interval
// [start, start+duration) overlaps the candidate's, for the same service
// and professional on the same date. editingID is skipped (0 skips nothing).
// Cancelled appointments never conflict, and a candidate whose service is
// unknown is not checked.
func FindConflict(
	candidate models.Appointment,
	editingID uint,
	appointments []models.Appointment,
	services []models.Service,
) *Conflict {

	svc, ok := FindService(services, candidate.Service)
	if !ok {
		return nil
	}

	start, err := ToMinutes(candidate.Time)
	if err != nil {
		return nil
	}
	end := start + svc.Duration

	for _, ex := range appointments {
		if editingID != 0 && ex.ID == editingID {
			continue
		}

		if ex.Service != candidate.Service ||
			ex.Date != candidate.Date ||
			!Status(ex.Status).Active() {
			continue
		}

		exSvc, ok := FindService(services, ex.Service)
		if !ok || exSvc.Professional != svc.Professional {
			continue
		}

		exStart, err := ToMinutes(ex.Time)
		if err != nil {
			continue
		}
		exEnd := exStart + exSvc.Duration

		if start < exEnd && end > exStart {
			return &Conflict{
				Date:    ex.Date,
				Time:    ex.Time,
				Service: ex.Service,
			}
		}
	}

	return nil
}
