package models

type Service struct {
	ID             uint    `json:"id"`
	Name           string  `json:"nome"`
	Duration       int     `json:"duracao"`
	ProfessionalID *uint   `json:"profissionalId,omitempty"`
	Professional   string  `json:"profissional"`
	Price          float64 `json:"preco"`
	Description    string  `json:"descricao"`
}

func (s Service) GetID() uint { return s.ID }
