package dto

import "github.com/BruksfildServices01/gestao-dashboard/internal/models"

type ProductDTO struct {
	models.Product
	StockStatus string  `json:"statusEstoque"`
	StockValue  float64 `json:"valorEstoque"`
}
