package models

import "time"

type AuditLog struct {
	ID        string    `json:"id"`
	UserID    *uint     `json:"userId,omitempty"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *uint     `json:"entityId,omitempty"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
