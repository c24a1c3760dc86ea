package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client name already exists")
	ErrInvalidClientInput  = errors.New("invalid client input")
)

type IClientUseCase interface {
	CreateClient(ctx context.Context, caller entities.Identity, name string) (entities.Client, error)
	UpdateClient(ctx context.Context, caller entities.Identity, id, name string) (entities.Client, error)
	DeleteClientByID(ctx context.Context, caller entities.Identity, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	ListByName(ctx context.Context, name string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	policy interfaces.IAccessPolicy
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, policy interfaces.IAccessPolicy) *ClientUseCase {
	return &ClientUseCase{repo: repo, policy: policy}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, caller entities.Identity, name string) (entities.Client, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Client{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	owner, err := u.repo.GetNameOwner(ctx, name)
	if err != nil {
		return entities.Client{}, err
	}
	if owner != "" {
		return entities.Client{}, ErrClientAlreadyExists
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, caller entities.Identity, id, name string) (entities.Client, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Client{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	owner, err := u.repo.GetNameOwner(ctx, name)
	if err != nil {
		return entities.Client{}, err
	}
	if owner != "" && owner != existing.ID {
		return entities.Client{}, ErrClientAlreadyExists
	}

	existing.Name = name
	return u.repo.Update(ctx, existing)
}

func (u *ClientUseCase) DeleteClientByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrClientNotFound
	}
	return u.repo.DeleteByID(ctx, existing.ID)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) GetAll(ctx context.Context) ([]entities.Client, error) {
	return u.repo.GetAll(ctx)
}

func (u *ClientUseCase) ListByName(ctx context.Context, name string) ([]entities.Client, error) {
	return u.repo.ListByName(ctx, strings.TrimSpace(name))
}
