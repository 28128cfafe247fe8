package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewLogin(repo domain.Repository, audit *audit.Dispatcher, logger *zap.Logger) *Login {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Login{repo: repo, audit: audit, logger: logger}
}

// Execute checks the credentials against "usuarios" and records the
// session. Plain-text passwords left by older data are upgraded to bcrypt.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*models.SessionUser, error) {
	if _, err := uc.repo.MigrateLegacyUsers(ctx); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	var session models.SessionUser
	err := uc.repo.Exclusive(ctx, func() error {
		users, err := uc.repo.ListUsers(ctx)
		if err != nil {
			return err
		}

		var found *models.User
		for i := range users {
			if users[i].Username == username {
				found = &users[i]
				break
			}
		}
		if found == nil {
			return httperr.ErrBusiness("invalid_credentials")
		}

		ok, rehash := domain.CheckPassword(found.Password, in.Password)
		if !ok {
			return httperr.ErrBusiness("invalid_credentials")
		}

		if rehash {
			if hashed, err := domain.HashPassword(in.Password); err == nil {
				found.Password = hashed
				users, _ = collection.Replace(users, *found)
				if err := uc.repo.SaveUsers(ctx, users); err != nil {
					return err
				}
				uc.logger.Info("password upgraded to bcrypt", zap.Uint("user_id", found.ID))
			}
		}

		session = domain.Session(*found)
		return uc.repo.SetCurrentUser(ctx, session)
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			uc.audit.Dispatch(audit.Event{
				Action:   "login_failed",
				Entity:   "user",
				Metadata: map[string]string{"username": username},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &session.ID,
		Action:   "login",
		Entity:   "user",
		EntityID: &session.ID,
	})

	return &session, nil
}

// ======================================================
// LOGOUT / ME
// ======================================================

type Session struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSession(repo domain.Repository, audit *audit.Dispatcher) *Session {
	return &Session{repo: repo, audit: audit}
}

func (uc *Session) Logout(ctx context.Context, actorID uint) error {
	if err := uc.repo.ClearCurrentUser(ctx); err != nil {
		return err
	}
	uc.audit.Dispatch(audit.Event{
		UserID: &actorID,
		Action: "logout",
		Entity: "user",
	})
	return nil
}

// Me returns the user behind a token, re-read so role changes apply.
func (uc *Session) Me(ctx context.Context, userID uint) (*models.SessionUser, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := collection.Find(users, userID)
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	s := domain.Session(u)
	return &s, nil
}
