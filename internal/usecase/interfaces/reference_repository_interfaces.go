package interfaces

import (
	"context"

	"rpa_chamados/internal/domain/entities"
)

// Reference-data repositories. GetByID returns a zero-value entity when the
// id does not resolve, mirroring the demand repository contract.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	DeleteByID(ctx context.Context, id string) error
	// GetNameOwner matches names case-insensitively and returns the owning
	// client id, or "" when the name is free.
	GetNameOwner(ctx context.Context, name string) (string, error)
	ListByName(ctx context.Context, name string) ([]entities.Client, error)
}

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetAll(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	DeleteByID(ctx context.Context, id string) error
	GetNameOwner(ctx context.Context, name string) (string, error)
}

type IRobotRepository interface {
	Create(ctx context.Context, r entities.Robot) (entities.Robot, error)
	GetByID(ctx context.Context, id string) (entities.Robot, error)
	GetAll(ctx context.Context) ([]entities.Robot, error)
	Update(ctx context.Context, r entities.Robot) (entities.Robot, error)
	DeleteByID(ctx context.Context, id string) error
	ListByCell(ctx context.Context, cell string) ([]entities.Robot, error)
	ListByExecutionType(ctx context.Context, t entities.ExecutionType) ([]entities.Robot, error)
	ListByStatus(ctx context.Context, s entities.RobotStatus) ([]entities.Robot, error)
}

type ISubmitterRepository interface {
	Create(ctx context.Context, s entities.Submitter) (entities.Submitter, error)
	GetByID(ctx context.Context, id string) (entities.Submitter, error)
	GetByEmail(ctx context.Context, email string) (entities.Submitter, error)
	GetAll(ctx context.Context) ([]entities.Submitter, error)
	Update(ctx context.Context, s entities.Submitter) (entities.Submitter, error)
}
