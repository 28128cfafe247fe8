package models

type CashFlowEntry struct {
	ID          uint    `json:"id"`
	Kind        string  `json:"tipo"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Date        string  `json:"data"`
}

func (e CashFlowEntry) GetID() uint { return e.ID }
