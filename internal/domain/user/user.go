package user

import (
	"strings"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

const (
	RoleAdmin  = "admin"
	RoleSeller = "vendedor"

	minUsernameLen = 3
	minPasswordLen = 3
)

type Input struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	Role               string `json:"role"`
	CanSell            bool   `json:"canSell"`
	CanProvideServices bool   `json:"canProvideServices"`
	Specialization     string `json:"specialization"`
}

// Validate checks the user form. editingID is 0 on creation, when the
// password becomes mandatory; on edit an empty password keeps the old one.
func Validate(in Input, users []models.User, editingID uint) error {
	ve := httperr.NewValidation()

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		ve.Add("username", "Nome de usuário é obrigatório")
	case len([]rune(username)) < minUsernameLen:
		ve.Add("username", "Nome de usuário deve ter pelo menos 3 caracteres")
	default:
		for _, u := range users {
			if u.Username == username && u.ID != editingID {
				ve.Add("username", "Este nome de usuário já está em uso")
				break
			}
		}
	}

	if editingID == 0 || in.Password != "" {
		switch {
		case in.Password == "" && editingID == 0:
			ve.Add("password", "Senha é obrigatória")
		case len([]rune(in.Password)) < minPasswordLen:
			ve.Add("password", "Senha deve ter pelo menos 3 caracteres")
		}
		if in.Password != in.ConfirmPassword {
			ve.Add("confirmPassword", "Confirmação de senha não confere")
		}
	}

	role := normalizeRole(in.Role)
	if role == "" {
		ve.Add("role", "Perfil inválido")
	}

	if role != RoleAdmin && !in.CanSell && !in.CanProvideServices {
		ve.Add("permissions", "Selecione pelo menos uma permissão (vendas ou serviços)")
	}

	if role != RoleAdmin && in.CanProvideServices && strings.TrimSpace(in.Specialization) == "" {
		ve.Add("specialization", "Especialização é obrigatória para profissionais que prestam serviços")
	}

	return ve.Err()
}

// Apply copies the validated form onto base. Admins always get both
// permissions. The password is left to the caller, which hashes it.
func Apply(in Input, base models.User) models.User {
	base.Username = strings.TrimSpace(in.Username)
	base.Role = normalizeRole(in.Role)
	base.CanSell = in.CanSell
	base.CanProvideServices = in.CanProvideServices

	if base.Role == RoleAdmin {
		base.CanSell = true
		base.CanProvideServices = true
	}

	if base.CanProvideServices {
		base.Specialization = strings.TrimSpace(in.Specialization)
	} else {
		base.Specialization = ""
	}

	return base
}

// normalizeRole maps an empty role to vendedor and rejects unknown ones.
func normalizeRole(role string) string {
	switch strings.TrimSpace(role) {
	case "", RoleSeller:
		return RoleSeller
	case RoleAdmin:
		return RoleAdmin
	}
	return ""
}

// ======================================================
// ADMIN GUARD
// ======================================================

func countAdmins(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.Role == RoleAdmin {
			n++
		}
	}
	return n
}

// GuardDelete refuses to remove the only remaining admin.
func GuardDelete(users []models.User, target models.User) error {
	if target.Role == RoleAdmin && countAdmins(users) <= 1 {
		return httperr.ErrBusiness("last_admin")
	}
	return nil
}

// GuardRoleChange refuses to demote the only remaining admin.
func GuardRoleChange(users []models.User, current models.User, newRole string) error {
	if current.Role == RoleAdmin && newRole != RoleAdmin && countAdmins(users) <= 1 {
		return httperr.ErrBusiness("last_admin")
	}
	return nil
}

// ======================================================
// LEGACY MIGRATION
// ======================================================

// MigrateLegacy converts the old "vendedores" records when "usuarios" is
// still empty. The bool is false when nothing had to be migrated.
func MigrateLegacy(legacy []models.LegacySeller, users []models.User) ([]models.User, bool) {
	if len(legacy) == 0 || len(users) > 0 {
		return users, false
	}

	out := make([]models.User, 0, len(legacy))
	for _, l := range legacy {
		out = append(out, models.User{
			ID:                 l.ID,
			Username:           l.Username,
			Password:           l.Password,
			Role:               l.Role,
			CanSell:            true,
			CanProvideServices: false,
			Specialization:     "",
		})
	}
	return out, true
}

// Session strips the password for the "currentUser" record.
func Session(u models.User) models.SessionUser {
	return models.SessionUser{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               u.Role,
		CanSell:            u.CanSell,
		CanProvideServices: u.CanProvideServices,
		Specialization:     u.Specialization,
	}
}
