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
	ErrDemandNotFound      = errors.New("demand not found")
	ErrDemandAlreadyExists = errors.New("demand name already exists")
	ErrInvalidDemandRef    = errors.New("invalid demand reference")
	ErrInvalidDemandInput  = errors.New("invalid demand input")
	ErrCallerNotAuthorized = errors.New("caller not authorized")
)

// CreateDemandInput carries every field of a new demand. UpdateDemandInput is
// a full replacement: no field keeps its old value except ID and CreatedAt.

type CreateDemandInput struct {
	Name         string
	DocHours     float64
	DevHours     float64
	Type         entities.ServiceType
	Description  string
	FocalPointID string
	AnalystID    string
	ProjectID    string
	RobotID      string
	Status       entities.DemandStatus
	OpenedAt     *time.Time
	StartAt      *time.Time
	EndsAt       *time.Time
	ROI          string
	Client       string
	Service      string
}

type UpdateDemandInput struct {
	ID           string
	Name         string
	DocHours     float64
	DevHours     float64
	Type         entities.ServiceType
	Description  string
	FocalPointID string
	AnalystID    string
	ProjectID    string
	RobotID      string
	Status       entities.DemandStatus
	OpenedAt     *time.Time
	StartAt      *time.Time
	EndsAt       *time.Time
	EndedAt      *time.Time
	ROI          string
	Client       string
	Service      string
}

// IDemandUseCase owns the demand lifecycle: create/update/delete with name
// uniqueness and reference resolution, plus the read projections.

type IDemandUseCase interface {
	CreateDemand(ctx context.Context, caller entities.Identity, in CreateDemandInput) (entities.Demand, error)
	UpdateDemand(ctx context.Context, caller entities.Identity, in UpdateDemandInput) (entities.Demand, error)
	DeleteDemandByID(ctx context.Context, caller entities.Identity, id string) error
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	GetAll(ctx context.Context) ([]entities.Demand, error)
	ListByStatus(ctx context.Context, status entities.DemandStatus) ([]entities.Demand, error)
	ListByType(ctx context.Context, t entities.ServiceType) ([]entities.Demand, error)
	ListByAnalystID(ctx context.Context, analystID string) ([]entities.Demand, error)
	ListByFocalPointID(ctx context.Context, focalPointID string) ([]entities.Demand, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Demand, error)
	ListByRobotID(ctx context.Context, robotID string) ([]entities.Demand, error)
	ListByClient(ctx context.Context, client string) ([]entities.Demand, error)
	ListByService(ctx context.Context, service string) ([]entities.Demand, error)
}

type DemandUseCase struct {
	repo       interfaces.IDemandRepository
	projects   interfaces.IProjectRepository
	submitters interfaces.ISubmitterRepository
	robots     interfaces.IRobotRepository
	policy     interfaces.IAccessPolicy
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(
	repo interfaces.IDemandRepository,
	projects interfaces.IProjectRepository,
	submitters interfaces.ISubmitterRepository,
	robots interfaces.IRobotRepository,
	policy interfaces.IAccessPolicy,
) *DemandUseCase {
	return &DemandUseCase{
		repo:       repo,
		projects:   projects,
		submitters: submitters,
		robots:     robots,
		policy:     policy,
	}
}

func (u *DemandUseCase) CreateDemand(ctx context.Context, caller entities.Identity, in CreateDemandInput) (entities.Demand, error) {
	if err := u.policy.Authorize(ctx, caller); err != nil {
		return entities.Demand{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := validateDemandFields(in.Name, in.DocHours, in.DevHours, in.Type, in.Status); err != nil {
		return entities.Demand{}, err
	}

	owner, err := u.repo.GetNameOwner(ctx, in.Name)
	if err != nil {
		return entities.Demand{}, err
	}
	if owner != "" {
		return entities.Demand{}, ErrDemandAlreadyExists
	}

	if err := u.resolveReferences(ctx, in.ProjectID, in.FocalPointID, in.AnalystID, in.RobotID); err != nil {
		return entities.Demand{}, err
	}

	d := entities.Demand{
		ID:           uuid.NewString(),
		Name:         in.Name,
		DocHours:     in.DocHours,
		DevHours:     in.DevHours,
		Type:         in.Type,
		Description:  in.Description,
		FocalPointID: in.FocalPointID,
		AnalystID:    in.AnalystID,
		ProjectID:    in.ProjectID,
		RobotID:      in.RobotID,
		Status:       in.Status,
		OpenedAt:     in.OpenedAt,
		StartAt:      in.StartAt,
		EndsAt:       in.EndsAt,
		CreatedAt:    time.Now().UTC(),
		ROI:          in.ROI,
		Client:       in.Client,
		Service:      in.Service,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		// A concurrent create may win the name between our check and the
		// transactional write; surface it as the same uniqueness error.
		if errors.Is(err, interfaces.ErrDuplicateName) {
			return entities.Demand{}, ErrDemandAlreadyExists
		}
		return entities.Demand{}, err
	}
	return created, nil
}

func (u *DemandUseCase) UpdateDemand(ctx context.Context, caller entities.Identity, in UpdateDemandInput) (entities.Demand, error) {
	if err := u.policy.Authorize(ctx, caller); err != nil {
		return entities.Demand{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	existing, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Demand{}, err
	}
	if existing.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := validateDemandFields(in.Name, in.DocHours, in.DevHours, in.Type, in.Status); err != nil {
		return entities.Demand{}, err
	}

	owner, err := u.repo.GetNameOwner(ctx, in.Name)
	if err != nil {
		return entities.Demand{}, err
	}
	if owner != "" && owner != in.ID {
		return entities.Demand{}, ErrDemandAlreadyExists
	}

	if err := u.resolveReferences(ctx, in.ProjectID, in.FocalPointID, in.AnalystID, in.RobotID); err != nil {
		return entities.Demand{}, err
	}

	d := entities.Demand{
		ID:           existing.ID,
		Name:         in.Name,
		DocHours:     in.DocHours,
		DevHours:     in.DevHours,
		Type:         in.Type,
		Description:  in.Description,
		FocalPointID: in.FocalPointID,
		AnalystID:    in.AnalystID,
		ProjectID:    in.ProjectID,
		RobotID:      in.RobotID,
		Status:       in.Status,
		OpenedAt:     in.OpenedAt,
		StartAt:      in.StartAt,
		EndsAt:       in.EndsAt,
		EndedAt:      in.EndedAt,
		CreatedAt:    existing.CreatedAt,
		ROI:          in.ROI,
		Client:       in.Client,
		Service:      in.Service,
	}

	updated, err := u.repo.Update(ctx, d, existing.Name)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateName) {
			return entities.Demand{}, ErrDemandAlreadyExists
		}
		if errors.Is(err, interfaces.ErrItemGone) {
			return entities.Demand{}, ErrDemandNotFound
		}
		return entities.Demand{}, err
	}
	return updated, nil
}

func (u *DemandUseCase) DeleteDemandByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrDemandNotFound
	}

	// Trackings pointing at the demand are left in place. See DESIGN.md for
	// the cascade decision.
	if err := u.repo.DeleteByID(ctx, existing.ID, existing.Name); err != nil {
		if errors.Is(err, interfaces.ErrItemGone) {
			return ErrDemandNotFound
		}
		return err
	}
	return nil
}

func (u *DemandUseCase) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}
	return d, nil
}

func (u *DemandUseCase) GetAll(ctx context.Context) ([]entities.Demand, error) {
	return u.repo.GetAll(ctx)
}

func (u *DemandUseCase) ListByStatus(ctx context.Context, status entities.DemandStatus) ([]entities.Demand, error) {
	if !entities.ValidDemandStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDemandInput, status)
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *DemandUseCase) ListByType(ctx context.Context, t entities.ServiceType) ([]entities.Demand, error) {
	if !entities.ValidServiceType(t) {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDemandInput, t)
	}
	return u.repo.ListByType(ctx, t)
}

func (u *DemandUseCase) ListByAnalystID(ctx context.Context, analystID string) ([]entities.Demand, error) {
	return u.repo.ListByAnalystID(ctx, analystID)
}

func (u *DemandUseCase) ListByFocalPointID(ctx context.Context, focalPointID string) ([]entities.Demand, error) {
	return u.repo.ListByFocalPointID(ctx, focalPointID)
}

func (u *DemandUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Demand, error) {
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *DemandUseCase) ListByRobotID(ctx context.Context, robotID string) ([]entities.Demand, error) {
	return u.repo.ListByRobotID(ctx, robotID)
}

func (u *DemandUseCase) ListByClient(ctx context.Context, client string) ([]entities.Demand, error) {
	return u.repo.ListByClient(ctx, client)
}

func (u *DemandUseCase) ListByService(ctx context.Context, service string) ([]entities.Demand, error) {
	return u.repo.ListByService(ctx, service)
}

// resolveReferences checks each required reference in a fixed order: project,
// focal point, analyst, robot. The first miss determines the error.
func (u *DemandUseCase) resolveReferences(ctx context.Context, projectID, focalPointID, analystID, robotID string) error {
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.ID == "" {
		return fmt.Errorf("%w: project %s", ErrInvalidDemandRef, projectID)
	}

	focalPoint, err := u.submitters.GetByID(ctx, focalPointID)
	if err != nil {
		return err
	}
	if focalPoint.ID == "" {
		return fmt.Errorf("%w: focal point %s", ErrInvalidDemandRef, focalPointID)
	}

	analyst, err := u.submitters.GetByID(ctx, analystID)
	if err != nil {
		return err
	}
	if analyst.ID == "" {
		return fmt.Errorf("%w: analyst %s", ErrInvalidDemandRef, analystID)
	}

	robot, err := u.robots.GetByID(ctx, robotID)
	if err != nil {
		return err
	}
	if robot.ID == "" {
		return fmt.Errorf("%w: robot %s", ErrInvalidDemandRef, robotID)
	}
	return nil
}

func validateDemandFields(name string, docHours, devHours float64, t entities.ServiceType, status entities.DemandStatus) error {
	if name == "" {
		return fmt.Errorf("%w: blank name", ErrInvalidDemandInput)
	}
	if docHours < 0 || devHours < 0 {
		return fmt.Errorf("%w: negative hours", ErrInvalidDemandInput)
	}
	if !entities.ValidServiceType(t) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDemandInput, t)
	}
	if !entities.ValidDemandStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDemandInput, status)
	}
	return nil
}
