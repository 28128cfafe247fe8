package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/product"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/sale"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

// CostRatio is the share of the current unit price assumed as cost.
var CostRatio = decimal.NewFromFloat(0.6)

// ======================================================
// EARNINGS
// ======================================================

type MonthlyEarnings struct {
	Month   string  `json:"mes"`
	Revenue float64 `json:"vendas"`
	Cost    float64 `json:"custos"`
	Profit  float64 `json:"lucro"`
}

type Earnings struct {
	Months  []MonthlyEarnings `json:"meses"`
	Revenue float64           `json:"vendaTotal"`
	Cost    float64           `json:"custoTotal"`
	Profit  float64           `json:"lucroTotal"`
	Margin  float64           `json:"margemLucro"`
}

type acc struct {
	revenue, cost decimal.Decimal
}

// ComputeEarnings groups sales by month (oldest first). Cost uses the
// product's current price; items whose product is gone cost nothing.
func ComputeEarnings(sales []models.Sale, products []models.Product) Earnings {
	byMonth := map[string]*acc{}
	totalRevenue, totalCost := decimal.Zero, decimal.Zero

	for _, s := range sales {
		d, err := timezone.ParseDate(s.Date)
		if err != nil {
			continue
		}
		key := timezone.MonthKey(d)

		a, ok := byMonth[key]
		if !ok {
			a = &acc{revenue: decimal.Zero, cost: decimal.Zero}
			byMonth[key] = a
		}

		cost := decimal.Zero
		for _, it := range s.Items {
			if p, ok := collection.Find(products, it.ProductID); ok {
				cost = cost.Add(money.Times(p.UnitPrice, it.Quantity).Mul(CostRatio))
			}
		}

		revenue := money.FromFloat(s.Total)
		a.revenue = a.revenue.Add(revenue)
		a.cost = a.cost.Add(cost)
		totalRevenue = totalRevenue.Add(revenue)
		totalCost = totalCost.Add(cost)
	}

	months := make([]MonthlyEarnings, 0, len(byMonth))
	for key, a := range byMonth {
		months = append(months, MonthlyEarnings{
			Month:   key,
			Revenue: money.Float(a.revenue),
			Cost:    money.Float(a.cost),
			Profit:  money.Float(a.revenue.Sub(a.cost)),
		})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	profit := totalRevenue.Sub(totalCost)
	e := Earnings{
		Months:  months,
		Revenue: money.Float(totalRevenue),
		Cost:    money.Float(totalCost),
		Profit:  money.Float(profit),
	}
	if totalRevenue.IsPositive() {
		e.Margin, _ = profit.Div(totalRevenue).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	}
	return e
}

// ======================================================
// DASHBOARD
// ======================================================

type Dashboard struct {
	Clients      int                  `json:"clientes"`
	Sales        sale.Stats           `json:"vendas"`
	CashFlow     cashflow.Totals      `json:"fluxoCaixa"`
	Stock        product.Stats        `json:"estoque"`
	Appointments appointment.Stats    `json:"agendamentos"`
	LowStock     []models.Product     `json:"produtosEstoqueBaixo"`
	Upcoming     []models.Appointment `json:"agendamentosHoje"`
}

type Snapshot struct {
	Clients      []models.Client
	Sales        []models.Sale
	Products     []models.Product
	CashFlow     []models.CashFlowEntry
	Appointments []models.Appointment
}

// ComputeDashboard summarizes every collection for the home screen.
// Upcoming lists today's active appointments by time.
func ComputeDashboard(s Snapshot, today time.Time) Dashboard {
	upcoming := appointment.Filter{Date: timezone.FormatISO(today)}.Apply(s.Appointments)
	active := make([]models.Appointment, 0, len(upcoming))
	for _, a := range upcoming {
		if appointment.Status(a.Status).Active() {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Time < active[j].Time })

	return Dashboard{
		Clients:      len(s.Clients),
		Sales:        sale.ComputeStats(s.Sales, today),
		CashFlow:     cashflow.Balance(s.CashFlow),
		Stock:        product.ComputeStats(s.Products),
		Appointments: appointment.ComputeStats(s.Appointments, today),
		LowStock:     product.LowStock(s.Products),
		Upcoming:     active,
	}
}
