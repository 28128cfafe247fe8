package models

type Appointment struct {
	ID      uint   `json:"id"`
	Client  string `json:"cliente"`
	Service string `json:"servico"`
	Date    string `json:"data"`
	Time    string `json:"hora"`
	Notes   string `json:"observacoes"`
	Status  string `json:"status"`
}

func (a Appointment) GetID() uint { return a.ID }
