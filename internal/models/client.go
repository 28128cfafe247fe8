package models

// Guardian is the legal guardian recorded for clients under 18.
type Guardian struct {
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
}

type Client struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	BirthDate string    `json:"dataNascimento"`
	Guardian  *Guardian `json:"responsavel,omitempty"`
}

func (c Client) GetID() uint { return c.ID }
