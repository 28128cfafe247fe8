package appointment

import "github.com/BruksfildServices01/gestao-dashboard/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "agendado"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

// ===============================
// Validations
// ===============================

// ParseStatus aceita apenas os três estados persistidos.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusScheduled, StatusConfirmed, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusScheduled
}

// Active reports whether the appointment still occupies its slot.
func (s Status) Active() bool {
	return s != StatusCancelled
}
