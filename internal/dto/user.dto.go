package dto

import "github.com/BruksfildServices01/gestao-dashboard/internal/models"

// UserDTO never carries the password.
type UserDTO struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	CanSell            bool   `json:"canSell"`
	CanProvideServices bool   `json:"canProvideServices"`
	Specialization     string `json:"specialization"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		CanSell:            u.CanSell,
		CanProvideServices: u.CanProvideServices,
		Specialization:     u.Specialization,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u))
	}
	return out
}
