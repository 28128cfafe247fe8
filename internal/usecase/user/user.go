package user

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// ======================================================
// SAVE
// ======================================================

type SaveUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveUser(repo domain.Repository, audit *audit.Dispatcher) *SaveUser {
	return &SaveUser{repo: repo, audit: audit}
}

// Execute creates the user when id is 0 and replaces it otherwise. On edit
// an empty password keeps the stored one.
func (uc *SaveUser) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*dto.UserDTO, error) {

	if _, err := uc.repo.MigrateLegacyUsers(ctx); err != nil {
		return nil, err
	}

	var u models.User
	err := uc.repo.Exclusive(ctx, func() error {
		users, err := uc.repo.ListUsers(ctx)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 1. Registro atual
		// --------------------------------------------------
		var base models.User
		if id != 0 {
			current, ok := collection.Find(users, id)
			if !ok {
				return httperr.ErrBusiness("user_not_found")
			}
			base = current
		}

		// --------------------------------------------------
		// 2. Formulário e guarda de admin
		// --------------------------------------------------
		if err := domain.Validate(in, users, id); err != nil {
			return err
		}
		u = domain.Apply(in, base)
		if id != 0 {
			if err := domain.GuardRoleChange(users, base, u.Role); err != nil {
				return err
			}
		}

		// --------------------------------------------------
		// 3. Senha
		// --------------------------------------------------
		if in.Password != "" {
			hashed, err := domain.HashPassword(in.Password)
			if err != nil {
				return err
			}
			u.Password = hashed
		}

		// --------------------------------------------------
		// 4. Persistência
		// --------------------------------------------------
		if id == 0 {
			u.ID = collection.NextID(users)
			return uc.repo.SaveUsers(ctx, collection.Append(users, u))
		}
		users, _ = collection.Replace(users, u)
		if err := uc.repo.SaveUsers(ctx, users); err != nil {
			return err
		}
		return uc.refreshSession(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	action := "user_updated"
	if id == 0 {
		action = "user_created"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"username": u.Username, "role": u.Role},
	})

	out := dto.NewUserDTO(u)
	return &out, nil
}

// refreshSession rewrites "currentUser" when the edited user is logged in.
func (uc *SaveUser) refreshSession(ctx context.Context, u models.User) error {
	cur, err := uc.repo.CurrentUser(ctx)
	if err != nil || cur == nil || cur.ID != u.ID {
		return err
	}
	return uc.repo.SetCurrentUser(ctx, domain.Session(u))
}

// ======================================================
// DELETE
// ======================================================

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(repo domain.Repository, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

// Execute removes the user unless it is the last admin.
func (uc *DeleteUser) Execute(ctx context.Context, actorID uint, id uint) error {
	if _, err := uc.repo.MigrateLegacyUsers(ctx); err != nil {
		return err
	}

	var removed models.User
	err := uc.repo.Exclusive(ctx, func() error {
		users, err := uc.repo.ListUsers(ctx)
		if err != nil {
			return err
		}

		target, ok := collection.Find(users, id)
		if !ok {
			return httperr.ErrBusiness("user_not_found")
		}
		if err := domain.GuardDelete(users, target); err != nil {
			return err
		}
		removed = target

		users, _ = collection.Remove(users, id)
		if err := uc.repo.SaveUsers(ctx, users); err != nil {
			return err
		}

		cur, err := uc.repo.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if cur != nil && cur.ID == id {
			return uc.repo.ClearCurrentUser(ctx)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
		Metadata: map[string]string{"username": removed.Username},
	})
	return nil
}

// ======================================================
// READ
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	if _, err := uc.repo.MigrateLegacyUsers(ctx); err != nil {
		return nil, err
	}
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTOs(users), nil
}

// Performance reports sales and appointments per user.
func (uc *ListUsers) Performance(ctx context.Context) ([]domain.Performance, error) {
	if _, err := uc.repo.MigrateLegacyUsers(ctx); err != nil {
		return nil, err
	}
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ComputePerformance(users, sales, appointments, services), nil
}
