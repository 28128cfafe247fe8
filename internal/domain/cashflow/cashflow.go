package cashflow

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

type Kind string

const (
	KindIn  Kind = "entrada"
	KindOut Kind = "saida"
)

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindIn, KindOut:
		return k, true
	}
	return "", false
}

type Input struct {
	Kind        string `json:"tipo"`
	Description string `json:"descricao"`
	Amount      any    `json:"valor"`
	Date        string `json:"data"`
}

// Build validates a manual entry. An empty date means today.
func Build(in Input, today time.Time) (models.CashFlowEntry, error) {
	ve := httperr.NewValidation()

	kind, ok := ParseKind(in.Kind)
	if !ok {
		ve.Add("tipo", "Tipo deve ser entrada ou saida")
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		ve.Add("descricao", "Descrição é obrigatória")
	}

	var amount float64
	if validators.IsBlank(in.Amount) {
		ve.Add("valor", "Valor é obrigatório")
	} else if v, err := validators.ParseFloat(in.Amount); err != nil || v <= 0 {
		ve.Add("valor", "Valor inválido")
	} else {
		amount = v
	}

	date := timezone.FormatBR(today)
	if s := strings.TrimSpace(in.Date); s != "" {
		d, err := timezone.ParseDate(s)
		if err != nil {
			ve.Add("data", "Data inválida")
		} else {
			date = timezone.FormatBR(d)
		}
	}

	if err := ve.Err(); err != nil {
		return models.CashFlowEntry{}, err
	}

	return models.CashFlowEntry{
		Kind:        string(kind),
		Description: desc,
		Amount:      amount,
		Date:        date,
	}, nil
}

// ======================================================
// TOTALS
// ======================================================

type Totals struct {
	In      float64 `json:"entradas"`
	Out     float64 `json:"saidas"`
	Balance float64 `json:"saldo"`
}

// Balance is Σ(entrada) − Σ(saida).
func Balance(entries []models.CashFlowEntry) Totals {
	in, out := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch Kind(e.Kind) {
		case KindIn:
			in = in.Add(money.FromFloat(e.Amount))
		case KindOut:
			out = out.Add(money.FromFloat(e.Amount))
		}
	}
	return Totals{
		In:      money.Float(in),
		Out:     money.Float(out),
		Balance: money.Float(in.Sub(out)),
	}
}

// ======================================================
// FILTERS
// ======================================================

// Filter bounds are inclusive ISO dates (YYYY-MM-DD). Kind "todos" or
// empty keeps both kinds.
type Filter struct {
	Kind string
	From string
	To   string
}

func (f Filter) Apply(entries []models.CashFlowEntry) []models.CashFlowEntry {
	out := make([]models.CashFlowEntry, 0, len(entries))
	for _, e := range entries {
		if f.Kind != "" && f.Kind != "todos" && e.Kind != f.Kind {
			continue
		}
		if f.From != "" || f.To != "" {
			iso := isoOf(e.Date)
			if f.From != "" && iso < f.From {
				continue
			}
			if f.To != "" && iso > f.To {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// ======================================================
// MONTHLY REPORT
// ======================================================

type MonthlyTotals struct {
	Month string `json:"mes"`
	Totals
}

// Monthly groups entries by YYYY-MM, oldest first.
func Monthly(entries []models.CashFlowEntry) []MonthlyTotals {
	byMonth := map[string][]models.CashFlowEntry{}
	for _, e := range entries {
		d, err := timezone.ParseDate(e.Date)
		if err != nil {
			continue
		}
		key := timezone.MonthKey(d)
		byMonth[key] = append(byMonth[key], e)
	}

	out := make([]MonthlyTotals, 0, len(byMonth))
	for month, list := range byMonth {
		out = append(out, MonthlyTotals{Month: month, Totals: Balance(list)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func isoOf(date string) string {
	d, err := timezone.ParseDate(date)
	if err != nil {
		return ""
	}
	return timezone.FormatISO(d)
}
