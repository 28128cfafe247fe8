package product

import (
	"strings"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

// LowStockThreshold is the highest quantity still flagged as low stock.
const LowStockThreshold = 10

type StockStatus string

const (
	StockOut StockStatus = "sem_estoque"
	StockLow StockStatus = "estoque_baixo"
	StockOK  StockStatus = "em_estoque"
)

func StatusOf(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= LowStockThreshold:
		return StockLow
	default:
		return StockOK
	}
}

// Input mirrors the product form. Quantity and price arrive as typed text
// or JSON numbers and are parsed before persistence.
type Input struct {
	Name        string `json:"nome"`
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
	Quantity    any    `json:"quantidade"`
	UnitPrice   any    `json:"precoUnitario"`
}

func Build(in Input) (models.Product, error) {
	ve := httperr.NewValidation()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("nome", "Nome é obrigatório")
	}

	var qty int
	if validators.IsBlank(in.Quantity) {
		ve.Add("quantidade", "Quantidade é obrigatória")
	} else if q, err := validators.ParseInt(in.Quantity); err != nil || q < 0 {
		ve.Add("quantidade", "Quantidade inválida")
	} else {
		qty = q
	}

	var price float64
	if validators.IsBlank(in.UnitPrice) {
		ve.Add("precoUnitario", "Preço unitário é obrigatório")
	} else if p, err := validators.ParseFloat(in.UnitPrice); err != nil || p < 0 {
		ve.Add("precoUnitario", "Preço unitário inválido")
	} else {
		price = p
	}

	if err := ve.Err(); err != nil {
		return models.Product{}, err
	}

	return models.Product{
		Name:        name,
		Code:        strings.TrimSpace(in.Code),
		Description: strings.TrimSpace(in.Description),
		Quantity:    qty,
		UnitPrice:   price,
	}, nil
}

// Filter matches name or code by case-insensitive substring.
func Filter(items []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Code), q) {
			out = append(out, p)
		}
	}
	return out
}

// LowStock lists products at or under the threshold, out-of-stock included.
func LowStock(items []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range items {
		if StatusOf(p.Quantity) != StockOK {
			out = append(out, p)
		}
	}
	return out
}

type Stats struct {
	Total      int     `json:"totalProdutos"`
	OutOfStock int     `json:"semEstoque"`
	LowStock   int     `json:"estoqueBaixo"`
	StockValue float64 `json:"valorTotalEstoque"`
}

func ComputeStats(items []models.Product) Stats {
	st := Stats{Total: len(items)}
	value := money.FromFloat(0)
	for _, p := range items {
		switch StatusOf(p.Quantity) {
		case StockOut:
			st.OutOfStock++
		case StockLow:
			st.LowStock++
		}
		value = value.Add(money.Times(p.UnitPrice, p.Quantity))
	}
	st.StockValue = money.Float(value)
	return st
}
