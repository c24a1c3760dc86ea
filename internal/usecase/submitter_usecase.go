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
	ErrSubmitterNotFound     = errors.New("submitter not found")
	ErrInvalidSubmitterInput = errors.New("invalid submitter input")
)

type ISubmitterUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Submitter, error)
	GetByEmail(ctx context.Context, email string) (entities.Submitter, error)
	GetAll(ctx context.Context) ([]entities.Submitter, error)
	UpdateActiveStatus(ctx context.Context, caller entities.Identity, id string, isActive bool) (entities.Submitter, error)
	// FindOrCreate resolves the submitter record for a verified identity,
	// creating it on first contact. Used by request intake.
	FindOrCreate(ctx context.Context, identity entities.Identity, department, company string) (entities.Submitter, error)
}

type SubmitterUseCase struct {
	repo   interfaces.ISubmitterRepository
	policy interfaces.IAccessPolicy
}

var _ ISubmitterUseCase = (*SubmitterUseCase)(nil)

func NewSubmitterUseCase(repo interfaces.ISubmitterRepository, policy interfaces.IAccessPolicy) *SubmitterUseCase {
	return &SubmitterUseCase{repo: repo, policy: policy}
}

func (u *SubmitterUseCase) GetByID(ctx context.Context, id string) (entities.Submitter, error) {
	s, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Submitter{}, err
	}
	if s.ID == "" {
		return entities.Submitter{}, ErrSubmitterNotFound
	}
	return s, nil
}

func (u *SubmitterUseCase) GetByEmail(ctx context.Context, email string) (entities.Submitter, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.Submitter{}, ErrInvalidSubmitterInput
	}

	s, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Submitter{}, err
	}
	if s.ID == "" {
		return entities.Submitter{}, ErrSubmitterNotFound
	}
	return s, nil
}

func (u *SubmitterUseCase) GetAll(ctx context.Context) ([]entities.Submitter, error) {
	return u.repo.GetAll(ctx)
}

func (u *SubmitterUseCase) UpdateActiveStatus(ctx context.Context, caller entities.Identity, id string, isActive bool) (entities.Submitter, error) {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return entities.Submitter{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	s, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Submitter{}, err
	}
	if s.ID == "" {
		return entities.Submitter{}, ErrSubmitterNotFound
	}

	now := time.Now().UTC()
	s.IsActive = isActive
	s.LastActivity = &now
	return u.repo.Update(ctx, s)
}

func (u *SubmitterUseCase) FindOrCreate(ctx context.Context, identity entities.Identity, department, company string) (entities.Submitter, error) {
	email := normalizeEmail(identity.Email)
	if email == "" {
		return entities.Submitter{}, ErrInvalidSubmitterInput
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Submitter{}, err
	}

	now := time.Now().UTC()
	if existing.ID != "" {
		existing.LastActivity = &now
		existing.RequestsSubmitted++
		return u.repo.Update(ctx, existing)
	}

	s := entities.Submitter{
		ID:                uuid.NewString(),
		Name:              identity.DisplayName,
		Email:             email,
		Department:        department,
		Company:           company,
		UserRole:          entities.UserRoleDefault,
		IsActive:          true,
		RequestsSubmitted: 1,
		LastActivity:      &now,
		JoinedAt:          now,
	}
	return u.repo.Create(ctx, s)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
