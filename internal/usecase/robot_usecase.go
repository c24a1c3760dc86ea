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
	ErrRobotNotFound     = errors.New("robot not found")
	ErrInvalidRobotInput = errors.New("invalid robot input")
)

type RobotInput struct {
	Name          string
	Cell          string
	Technology    string
	ExecutionType entities.ExecutionType
	Client        string
	Status        entities.RobotStatus
}

type IRobotUseCase interface {
	CreateRobot(ctx context.Context, caller entities.Identity, in RobotInput) (entities.Robot, error)
	UpdateRobot(ctx context.Context, caller entities.Identity, id string, in RobotInput) (entities.Robot, error)
	DeleteRobotByID(ctx context.Context, caller entities.Identity, id string) error
	GetByID(ctx context.Context, id string) (entities.Robot, error)
	GetAll(ctx context.Context) ([]entities.Robot, error)
	ListByCell(ctx context.Context, cell string) ([]entities.Robot, error)
	ListByExecutionType(ctx context.Context, t entities.ExecutionType) ([]entities.Robot, error)
	ListByStatus(ctx context.Context, s entities.RobotStatus) ([]entities.Robot, error)
}

type RobotUseCase struct {
	repo   interfaces.IRobotRepository
	policy interfaces.IAccessPolicy
}

var _ IRobotUseCase = (*RobotUseCase)(nil)

func NewRobotUseCase(repo interfaces.IRobotRepository, policy interfaces.IAccessPolicy) *RobotUseCase {
	return &RobotUseCase{repo: repo, policy: policy}
}

func (u *RobotUseCase) CreateRobot(ctx context.Context, caller entities.Identity, in RobotInput) (entities.Robot, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Robot{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Robot{}, ErrInvalidRobotInput
	}

	r := entities.Robot{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Cell:          in.Cell,
		Technology:    in.Technology,
		ExecutionType: in.ExecutionType,
		Client:        in.Client,
		Status:        in.Status,
	}
	return u.repo.Create(ctx, r)
}

func (u *RobotUseCase) UpdateRobot(ctx context.Context, caller entities.Identity, id string, in RobotInput) (entities.Robot, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Robot{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Robot{}, ErrInvalidRobotInput
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Robot{}, err
	}
	if existing.ID == "" {
		return entities.Robot{}, ErrRobotNotFound
	}

	r := entities.Robot{
		ID:            existing.ID,
		Name:          in.Name,
		Cell:          in.Cell,
		Technology:    in.Technology,
		ExecutionType: in.ExecutionType,
		Client:        in.Client,
		Status:        in.Status,
	}
	return u.repo.Update(ctx, r)
}

func (u *RobotUseCase) DeleteRobotByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrRobotNotFound
	}
	return u.repo.DeleteByID(ctx, existing.ID)
}

func (u *RobotUseCase) GetByID(ctx context.Context, id string) (entities.Robot, error) {
	r, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Robot{}, err
	}
	if r.ID == "" {
		return entities.Robot{}, ErrRobotNotFound
	}
	return r, nil
}

func (u *RobotUseCase) GetAll(ctx context.Context) ([]entities.Robot, error) {
	return u.repo.GetAll(ctx)
}

func (u *RobotUseCase) ListByCell(ctx context.Context, cell string) ([]entities.Robot, error) {
	return u.repo.ListByCell(ctx, strings.TrimSpace(cell))
}

func (u *RobotUseCase) ListByExecutionType(ctx context.Context, t entities.ExecutionType) ([]entities.Robot, error) {
	return u.repo.ListByExecutionType(ctx, t)
}

func (u *RobotUseCase) ListByStatus(ctx context.Context, s entities.RobotStatus) ([]entities.Robot, error) {
	return u.repo.ListByStatus(ctx, s)
}
