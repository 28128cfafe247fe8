package models

type SaleItem struct {
	ProductID uint `json:"id"`
	Quantity  int  `json:"quantidade"`
}

type Sale struct {
	ID            uint       `json:"id"`
	Date          string     `json:"data"`
	Items         []SaleItem `json:"produtos"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"metodoPagamento"`
	SellerID      uint       `json:"vendedorId"`
	ClientID      *uint      `json:"clienteId"`
}

func (s Sale) GetID() uint { return s.ID }
