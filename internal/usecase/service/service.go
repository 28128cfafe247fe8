package service

import (
	"context"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/service"
	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// ======================================================
// SAVE
// ======================================================

type SaveService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveService(repo domain.Repository, audit *audit.Dispatcher) *SaveService {
	return &SaveService{repo: repo, audit: audit}
}

// Execute creates the service when id is 0 and replaces it otherwise.
func (uc *SaveService) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*models.Service, error) {

	var svc models.Service
	err := uc.repo.Exclusive(ctx, func() error {
		users, err := uc.repo.ListUsers(ctx)
		if err != nil {
			return err
		}

		svc, err = domain.Build(in, users)
		if err != nil {
			return err
		}

		items, err := uc.repo.ListServices(ctx)
		if err != nil {
			return err
		}

		if id == 0 {
			svc.ID = collection.NextID(items)
			return uc.repo.SaveServices(ctx, collection.Append(items, svc))
		}

		svc.ID = id
		items, ok := collection.Replace(items, svc)
		if !ok {
			return httperr.ErrBusiness("service_not_found")
		}
		return uc.repo.SaveServices(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	action := "service_updated"
	if id == 0 {
		action = "service_created"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: svc,
	})

	return &svc, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, audit: audit}
}

func (uc *DeleteService) Execute(ctx context.Context, actorID uint, id uint) error {
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListServices(ctx)
		if err != nil {
			return err
		}
		items, ok := collection.Remove(items, id)
		if !ok {
			return httperr.ErrBusiness("service_not_found")
		}
		return uc.repo.SaveServices(ctx, items)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// READ
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	items, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(items), nil
}

func (uc *ListServices) Stats(ctx context.Context) (domain.Stats, error) {
	items, err := uc.repo.ListServices(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(items), nil
}

// Professionals lists the users that can be assigned to a service.
func (uc *ListServices) Professionals(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTOs(domain.Professionals(users)), nil
}
