package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

type Input struct {
	Client  string `json:"cliente"`
	Service string `json:"servico"`
	Date    string `json:"data"`
	Time    string `json:"hora"`
	Notes   string `json:"observacoes"`
	Status  string `json:"status"`
}

// Build validates the form and returns the appointment without id.
// Dates are normalized to YYYY-MM-DD and times to HH:MM.
func Build(in Input) (models.Appointment, error) {
	ve := httperr.NewValidation()

	client := strings.TrimSpace(in.Client)
	if client == "" {
		ve.Add("cliente", "Cliente é obrigatório")
	}

	service := strings.TrimSpace(in.Service)
	if service == "" {
		ve.Add("servico", "Serviço é obrigatório")
	}

	var date string
	if strings.TrimSpace(in.Date) == "" {
		ve.Add("data", "Data é obrigatória")
	} else if d, err := timezone.ParseDate(strings.TrimSpace(in.Date)); err != nil {
		ve.Add("data", "Data inválida")
	} else {
		date = timezone.FormatISO(d)
	}

	var hour string
	if strings.TrimSpace(in.Time) == "" {
		ve.Add("hora", "Hora é obrigatória")
	} else if m, err := ToMinutes(in.Time); err != nil {
		ve.Add("hora", "Hora inválida")
	} else {
		hour = FromMinutes(m)
	}

	status := InitialStatus()
	if in.Status != "" {
		st, err := ParseStatus(in.Status)
		if err != nil {
			ve.Add("status", "Status inválido")
		}
		status = st
	}

	if err := ve.Err(); err != nil {
		return models.Appointment{}, err
	}

	return models.Appointment{
		Client:  client,
		Service: service,
		Date:    date,
		Time:    hour,
		Notes:   strings.TrimSpace(in.Notes),
		Status:  string(status),
	}, nil
}

// ===============================
// Filters / Stats
// ===============================

type Filter struct {
	Client string
	Date   string
	Status string
}

// Apply keeps appointments whose client contains Filter.Client
// (case-insensitive) and that match Date and Status when set.
// Status "todos" matches everything.
func (f Filter) Apply(items []models.Appointment) []models.Appointment {
	client := strings.ToLower(strings.TrimSpace(f.Client))
	out := make([]models.Appointment, 0, len(items))
	for _, a := range items {
		if client != "" && !strings.Contains(strings.ToLower(a.Client), client) {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.Status != "" && f.Status != "todos" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

type Stats struct {
	Total     int `json:"total"`
	Today     int `json:"hoje"`
	Confirmed int `json:"confirmados"`
	Cancelled int `json:"cancelados"`
}

func ComputeStats(items []models.Appointment, today time.Time) Stats {
	iso := timezone.FormatISO(today)
	st := Stats{Total: len(items)}
	for _, a := range items {
		if a.Date == iso {
			st.Today++
		}
		switch Status(a.Status) {
		case StatusConfirmed:
			st.Confirmed++
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st
}
