package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project name already exists")
	ErrInvalidProjectInput  = errors.New("invalid project input")
	ErrInvalidProjectClient = errors.New("project client does not exist")
)

type ProjectInput struct {
	Name        string
	Description string
	Area        string
	ClientID    string
}

type IProjectUseCase interface {
	CreateProject(ctx context.Context, caller entities.Identity, in ProjectInput) (entities.Project, error)
	UpdateProject(ctx context.Context, caller entities.Identity, id string, in ProjectInput) (entities.Project, error)
	DeleteProjectByID(ctx context.Context, caller entities.Identity, id string) error
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetAll(ctx context.Context) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo    interfaces.IProjectRepository
	clients interfaces.IClientRepository
	policy  interfaces.IAccessPolicy
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, clients interfaces.IClientRepository, policy interfaces.IAccessPolicy) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clients: clients, policy: policy}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, caller entities.Identity, in ProjectInput) (entities.Project, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Project{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	owner, err := u.repo.GetNameOwner(ctx, in.Name)
	if err != nil {
		return entities.Project{}, err
	}
	if owner != "" {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	if err := u.resolveClient(ctx, in.ClientID); err != nil {
		return entities.Project{}, err
	}

	p := entities.Project{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Area:        in.Area,
		ClientID:    in.ClientID,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) UpdateProject(ctx context.Context, caller entities.Identity, id string, in ProjectInput) (entities.Project, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Project{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	owner, err := u.repo.GetNameOwner(ctx, in.Name)
	if err != nil {
		return entities.Project{}, err
	}
	if owner != "" && owner != existing.ID {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	if err := u.resolveClient(ctx, in.ClientID); err != nil {
		return entities.Project{}, err
	}

	p := entities.Project{
		ID:          existing.ID,
		Name:        in.Name,
		Description: in.Description,
		Area:        in.Area,
		ClientID:    in.ClientID,
	}
	return u.repo.Update(ctx, p)
}

func (u *ProjectUseCase) DeleteProjectByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProjectNotFound
	}
	return u.repo.DeleteByID(ctx, existing.ID)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) GetAll(ctx context.Context) ([]entities.Project, error) {
	return u.repo.GetAll(ctx)
}

// resolveClient tolerates an empty client id: a project may exist before it is
// assigned to a client.
func (u *ProjectUseCase) resolveClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return nil
	}
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidProjectClient, clientID)
	}
	return nil
}
