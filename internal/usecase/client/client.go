package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/client"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

// ======================================================
// SAVE (create / update)
// ======================================================

type SaveClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
	opts  domain.Options
}

func NewSaveClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	opts domain.Options,
) *SaveClient {
	return &SaveClient{
		repo:  repo,
		audit: audit,
		clock: clock,
		opts:  opts,
	}
}

// Execute creates the client when id is 0 and replaces it otherwise.
func (uc *SaveClient) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in domain.Input,
) (*dto.ClientDTO, error) {

	today := uc.clock.Now()
	c, err := domain.Build(in, today, uc.opts)
	if err != nil {
		return nil, err
	}

	err = uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListClients(ctx)
		if err != nil {
			return err
		}

		if id == 0 {
			c.ID = collection.NextID(items)
			return uc.repo.SaveClients(ctx, collection.Append(items, c))
		}

		c.ID = id
		items, ok := collection.Replace(items, c)
		if !ok {
			return httperr.ErrBusiness("client_not_found")
		}
		return uc.repo.SaveClients(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	action := "client_updated"
	if id == 0 {
		action = "client_created"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]string{"nome": c.Name},
	})

	out := toDTO(c, today)
	return &out, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(repo domain.Repository, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

func (uc *DeleteClient) Execute(ctx context.Context, actorID uint, id uint) error {
	err := uc.repo.Exclusive(ctx, func() error {
		items, err := uc.repo.ListClients(ctx)
		if err != nil {
			return err
		}
		items, ok := collection.Remove(items, id)
		if !ok {
			return httperr.ErrBusiness("client_not_found")
		}
		return uc.repo.SaveClients(ctx, items)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// READ
// ======================================================

type ListClients struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListClients(repo domain.Repository, clock timezone.Clock) *ListClients {
	return &ListClients{repo: repo, clock: clock}
}

func (uc *ListClients) Execute(ctx context.Context, query string) ([]dto.ClientDTO, error) {
	items, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.clock.Now()
	filtered := domain.Filter(items, query)
	out := make([]dto.ClientDTO, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, toDTO(c, today))
	}
	return out, nil
}

// Get returns one client by id.
func (uc *ListClients) Get(ctx context.Context, id uint) (*dto.ClientDTO, error) {
	items, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := collection.Find(items, id)
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	out := toDTO(c, uc.clock.Now())
	return &out, nil
}

func toDTO(c models.Client, today time.Time) dto.ClientDTO {
	out := dto.ClientDTO{Client: c}
	if age, ok := domain.AgeOf(c, today); ok {
		out.Age = &age
		out.Minor = domain.IsMinor(age)
	}
	return out
}
