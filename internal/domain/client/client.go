package client

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

type GuardianInput struct {
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
}

type Input struct {
	Name      string         `json:"nome"`
	CPF       string         `json:"cpf"`
	Email     string         `json:"email"`
	Phone     string         `json:"telefone"`
	BirthDate string         `json:"dataNascimento"`
	Guardian  *GuardianInput `json:"responsavel"`
}

// Options tune validation that depends on the environment.
type Options struct {
	// EmailDomainCheck, when set, must accept the e-mail's domain.
	EmailDomainCheck func(email string) bool
}

// Build validates the form and returns the record to persist, without id.
// The guardian is kept only when the client is a minor on today's date.
func Build(in Input, today time.Time, opts Options) (models.Client, error) {
	ve := httperr.NewValidation()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("nome", "Nome é obrigatório")
	}

	if strings.TrimSpace(in.CPF) == "" {
		ve.Add("cpf", "CPF é obrigatório")
	} else if !validators.IsValidCPF(in.CPF) {
		ve.Add("cpf", "CPF inválido")
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		ve.Add("email", "E-mail é obrigatório")
	case !validators.IsEmailFormatValid(email):
		ve.Add("email", "E-mail inválido")
	case opts.EmailDomainCheck != nil && !opts.EmailDomainCheck(email):
		ve.Add("email", "O domínio do e-mail informado não parece ser válido.")
	}

	var (
		birth time.Time
		minor bool
	)
	if strings.TrimSpace(in.BirthDate) == "" {
		ve.Add("dataNascimento", "Data de nascimento é obrigatória")
	} else if b, err := timezone.ParseDate(strings.TrimSpace(in.BirthDate)); err != nil {
		ve.Add("dataNascimento", "Data de nascimento inválida")
	} else if age := Age(b, today); age < 0 {
		ve.Add("dataNascimento", "Data de nascimento no futuro")
	} else {
		birth = b
		minor = IsMinor(age)
	}

	var guardian *models.Guardian
	if minor {
		g := GuardianInput{}
		if in.Guardian != nil {
			g = *in.Guardian
		}
		if strings.TrimSpace(g.Name) == "" {
			ve.Add("nomeResponsavel", "Nome do responsável é obrigatório")
		}
		if strings.TrimSpace(g.CPF) == "" {
			ve.Add("cpfResponsavel", "CPF do responsável é obrigatório")
		} else if !validators.IsValidCPF(g.CPF) {
			ve.Add("cpfResponsavel", "CPF do responsável inválido")
		}
		guardian = &models.Guardian{
			Name: strings.TrimSpace(g.Name),
			CPF:  validators.FormatCPF(g.CPF),
		}
	}

	if err := ve.Err(); err != nil {
		return models.Client{}, err
	}

	return models.Client{
		Name:      name,
		CPF:       validators.FormatCPF(in.CPF),
		Email:     email,
		Phone:     validators.FormatPhone(strings.TrimSpace(in.Phone)),
		BirthDate: timezone.FormatBR(birth),
		Guardian:  guardian,
	}, nil
}

// AgeOf derives the age from the stored DD/MM/YYYY birth date.
func AgeOf(c models.Client, today time.Time) (int, bool) {
	b, err := timezone.ParseDate(c.BirthDate)
	if err != nil {
		return 0, false
	}
	return Age(b, today), true
}

// Filter matches name, CPF or e-mail by case-insensitive substring.
// CPF also matches on digits only.
func Filter(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}
	qDigits := validators.CPFDigits(q)

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(c.CPF, q) ||
			(qDigits != "" && strings.Contains(validators.CPFDigits(c.CPF), qDigits)) {
			out = append(out, c)
		}
	}
	return out
}
