package user

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type Performance struct {
	UserID       uint    `json:"id"`
	Username     string  `json:"username"`
	SalesCount   int     `json:"vendas"`
	SalesTotal   float64 `json:"totalVendas"`
	Appointments int     `json:"agendamentos"`
}

// ComputePerformance counts sales per seller and appointments per
// professional. An appointment belongs to the professional of its service,
// matched by profissionalId or, failing that, by username.
func ComputePerformance(
	users []models.User,
	sales []models.Sale,
	appointments []models.Appointment,
	services []models.Service,
) []Performance {

	totals := map[uint]decimal.Decimal{}
	counts := map[uint]int{}
	for _, s := range sales {
		counts[s.SellerID]++
		totals[s.SellerID] = totals[s.SellerID].Add(money.FromFloat(s.Total))
	}

	byName := map[string]uint{}
	for _, u := range users {
		byName[u.Username] = u.ID
	}

	svcOwner := map[string]uint{}
	for _, svc := range services {
		if _, seen := svcOwner[svc.Name]; seen {
			continue
		}
		switch {
		case svc.ProfessionalID != nil:
			svcOwner[svc.Name] = *svc.ProfessionalID
		default:
			if id, ok := byName[svc.Professional]; ok {
				svcOwner[svc.Name] = id
			}
		}
	}

	handled := map[uint]int{}
	for _, a := range appointments {
		if id, ok := svcOwner[a.Service]; ok {
			handled[id]++
		}
	}

	out := make([]Performance, 0, len(users))
	for _, u := range users {
		out = append(out, Performance{
			UserID:       u.ID,
			Username:     u.Username,
			SalesCount:   counts[u.ID],
			SalesTotal:   money.Float(totals[u.ID]),
			Appointments: handled[u.ID],
		})
	}
	return out
}
