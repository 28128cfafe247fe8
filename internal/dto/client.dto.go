package dto

import "github.com/BruksfildServices01/gestao-dashboard/internal/models"

// ClientDTO adds the derived age to the stored client.
type ClientDTO struct {
	models.Client
	Age   *int `json:"idade"`
	Minor bool `json:"menorDeIdade"`
}
