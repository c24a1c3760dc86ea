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
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidRequestInput = errors.New("invalid request input")
)

// CreateRequestInput is the intake envelope. Exactly one of the details
// groups must be set and must match Kind; the submitter is resolved from the
// verified caller identity, never taken from the payload.

type CreateRequestInput struct {
	Kind        entities.RequestKind
	Title       string
	Description string
	Department  string
	Company     string
	Technology  string
	Melhoria    *entities.MelhoriaDetails
	Sustentacao *entities.SustentacaoDetails
	NovoProjeto *entities.NovoProjetoDetails
}

type IRequestUseCase interface {
	CreateRequest(ctx context.Context, caller entities.Identity, in CreateRequestInput) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	GetAll(ctx context.Context) ([]entities.Request, error)
	ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Request, error)
	DeleteRequestByID(ctx context.Context, caller entities.Identity, id string) error
}

type RequestUseCase struct {
	repo       interfaces.IRequestRepository
	submitters ISubmitterUseCase
	policy     interfaces.IAccessPolicy
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository, submitters ISubmitterUseCase, policy interfaces.IAccessPolicy) *RequestUseCase {
	return &RequestUseCase{repo: repo, submitters: submitters, policy: policy}
}

func (u *RequestUseCase) CreateRequest(ctx context.Context, caller entities.Identity, in CreateRequestInput) (entities.Request, error) {
	if err := u.policy.Authorize(ctx, caller); err != nil {
		return entities.Request{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return entities.Request{}, fmt.Errorf("%w: blank title", ErrInvalidRequestInput)
	}
	if !entities.ValidRequestKind(in.Kind) {
		return entities.Request{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequestInput, in.Kind)
	}
	if err := validateKindDetails(in); err != nil {
		return entities.Request{}, err
	}

	submitter, err := u.submitters.FindOrCreate(ctx, caller, in.Department, in.Company)
	if err != nil {
		return entities.Request{}, err
	}

	r := entities.Request{
		ID:          uuid.NewString(),
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
		Department:  in.Department,
		Technology:  in.Technology,
		SubmitterID: submitter.ID,
		CreatedAt:   time.Now().UTC(),
		Melhoria:    in.Melhoria,
		Sustentacao: in.Sustentacao,
		NovoProjeto: in.NovoProjeto,
	}
	return u.repo.Create(ctx, r)
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	r, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) GetAll(ctx context.Context) ([]entities.Request, error) {
	return u.repo.GetAll(ctx)
}

func (u *RequestUseCase) ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Request, error) {
	return u.repo.ListBySubmitterID(ctx, strings.TrimSpace(submitterID))
}

func (u *RequestUseCase) DeleteRequestByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrRequestNotFound
	}
	return u.repo.DeleteByID(ctx, existing.ID)
}

// validateKindDetails enforces the tagged-union shape: the details group
// matching Kind is required, the other two must be absent.
func validateKindDetails(in CreateRequestInput) error {
	set := 0
	if in.Melhoria != nil {
		set++
	}
	if in.Sustentacao != nil {
		set++
	}
	if in.NovoProjeto != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: exactly one details group required", ErrInvalidRequestInput)
	}

	switch in.Kind {
	case entities.RequestKindMelhoria:
		if in.Melhoria == nil {
			return fmt.Errorf("%w: melhoria details required", ErrInvalidRequestInput)
		}
	case entities.RequestKindSustentacao:
		if in.Sustentacao == nil {
			return fmt.Errorf("%w: sustentacao details required", ErrInvalidRequestInput)
		}
	case entities.RequestKindNovoProjeto:
		if in.NovoProjeto == nil {
			return fmt.Errorf("%w: novo projeto details required", ErrInvalidRequestInput)
		}
	}
	return nil
}
