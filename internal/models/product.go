package models

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"nome"`
	Code        string  `json:"codigo"`
	Description string  `json:"descricao"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"precoUnitario"`
}

func (p Product) GetID() uint { return p.ID }
