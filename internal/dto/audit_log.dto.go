package dto

import "github.com/BruksfildServices01/gestao-dashboard/internal/models"

type AuditLogPage struct {
	Data  []models.AuditLog `json:"data"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}
