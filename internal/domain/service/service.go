package service

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

type Input struct {
	Name           string `json:"nome"`
	Duration       any    `json:"duracao"`
	ProfessionalID *uint  `json:"profissionalId"`
	Professional   string `json:"profissional"`
	Price          any    `json:"preco"`
	Description    string `json:"descricao"`
}

// CanProvide reports whether a user may be assigned as a professional.
func CanProvide(u models.User) bool {
	return u.CanProvideServices || u.Role == "admin"
}

// Professionals lists the users that may be assigned to a service.
func Professionals(users []models.User) []models.User {
	out := []models.User{}
	for _, u := range users {
		if CanProvide(u) {
			out = append(out, u)
		}
	}
	return out
}

// Build validates the service form. When ProfessionalID is set the
// professional's name is taken from that user.
func Build(in Input, users []models.User) (models.Service, error) {
	ve := httperr.NewValidation()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("nome", "Nome é obrigatório")
	}

	var duration int
	if validators.IsBlank(in.Duration) {
		ve.Add("duracao", "Duração é obrigatória")
	} else if d, err := validators.ParseInt(in.Duration); err != nil || d < 0 {
		ve.Add("duracao", "Duração inválida")
	} else {
		duration = d
	}

	professional := strings.TrimSpace(in.Professional)
	var professionalID *uint
	if in.ProfessionalID != nil {
		u, ok := collection.Find(users, *in.ProfessionalID)
		switch {
		case !ok:
			ve.Add("profissionalId", "Profissional não encontrado")
		case !CanProvide(u):
			ve.Add("profissionalId", "Usuário não presta serviços")
		default:
			id := u.ID
			professionalID = &id
			professional = u.Username
		}
	} else if professional == "" {
		ve.Add("profissional", "Profissional é obrigatório")
	}

	var price float64
	if validators.IsBlank(in.Price) {
		ve.Add("preco", "Preço é obrigatório")
	} else if p, err := validators.ParseFloat(in.Price); err != nil || p < 0 {
		ve.Add("preco", "Preço inválido")
	} else {
		price = p
	}

	if err := ve.Err(); err != nil {
		return models.Service{}, err
	}

	return models.Service{
		Name:           name,
		Duration:       duration,
		ProfessionalID: professionalID,
		Professional:   professional,
		Price:          price,
		Description:    strings.TrimSpace(in.Description),
	}, nil
}

// Filter matches name by case-insensitive substring and professional by
// exact name ("todos" matches all).
type Filter struct {
	Name         string
	Professional string
}

func (f Filter) Apply(items []models.Service) []models.Service {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	out := make([]models.Service, 0, len(items))
	for _, s := range items {
		if name != "" && !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		if f.Professional != "" && f.Professional != "todos" && s.Professional != f.Professional {
			continue
		}
		out = append(out, s)
	}
	return out
}

type Stats struct {
	Total               int     `json:"totalServicos"`
	AverageDuration     int     `json:"duracaoMedia"`
	AveragePrice        float64 `json:"precoMedio"`
	UniqueProfessionals int     `json:"profissionaisUnicos"`
}

func ComputeStats(items []models.Service) Stats {
	st := Stats{Total: len(items)}
	if len(items) == 0 {
		return st
	}

	durations := make(stats.Float64Data, 0, len(items))
	prices := make(stats.Float64Data, 0, len(items))
	professionals := map[string]struct{}{}
	for _, s := range items {
		durations = append(durations, float64(s.Duration))
		prices = append(prices, s.Price)
		professionals[s.Professional] = struct{}{}
	}

	if d, err := durations.Mean(); err == nil {
		st.AverageDuration = int(math.Round(d))
	}
	if p, err := prices.Mean(); err == nil {
		st.AveragePrice = money.Float(money.FromFloat(p))
	}
	st.UniqueProfessionals = len(professionals)
	return st
}
