package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTrackingNotFound    = errors.New("tracking not found")
	ErrInvalidTrackingRef  = errors.New("invalid tracking reference")
	ErrInvalidTrackingData = errors.New("invalid tracking input")
	ErrDemandBlocked       = errors.New("cannot track against a blocked demand")
)

type CreateTrackingInput struct {
	DemandID    string
	Hours       float64
	Nature      entities.Nature
	Description string
	SubmittedAt time.Time
	SubmitterID string
}

type UpdateTrackingInput struct {
	ID          string
	DemandID    string
	Hours       float64
	Nature      entities.Nature
	Description string
	SubmittedAt time.Time
	SubmitterID string
}

// TrackingWithDemand is the read shape of a tracking entry: the demand and
// submitter are embedded as full projections.

type TrackingWithDemand struct {
	Tracking  entities.Tracking
	Demand    entities.Demand
	Submitter entities.Submitter
}

// ITrackingUseCase owns tracking entries and the BLOCKED-demand gate, and
// aggregates hour totals per demand.
type ITrackingUseCase interface {
	CreateTracking(ctx context.Context, caller entities.Identity, in CreateTrackingInput) (TrackingWithDemand, error)
	UpdateTracking(ctx context.Context, caller entities.Identity, in UpdateTrackingInput) (TrackingWithDemand, error)
	DeleteTrackingByID(ctx context.Context, caller entities.Identity, id string) error
	GetByID(ctx context.Context, id string) (TrackingWithDemand, error)
	GetAll(ctx context.Context) ([]TrackingWithDemand, error)
	ListByDemandID(ctx context.Context, demandID string) ([]TrackingWithDemand, error)
	ListBySubmitterID(ctx context.Context, submitterID string) ([]TrackingWithDemand, error)
	ListByNature(ctx context.Context, nature entities.Nature) ([]TrackingWithDemand, error)
	TotalHoursByDemandID(ctx context.Context, demandID string) (float64, error)
	TotalHoursByDemandIDAndNature(ctx context.Context, demandID string, nature entities.Nature) (float64, error)
}

type TrackingUseCase struct {
	repo       interfaces.ITrackingRepository
	demandRepo interfaces.IDemandRepository
	submitters interfaces.ISubmitterRepository
	demands    IDemandUseCase
	policy     interfaces.IAccessPolicy
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(
	repo interfaces.ITrackingRepository,
	demandRepo interfaces.IDemandRepository,
	submitters interfaces.ISubmitterRepository,
	demands IDemandUseCase,
	policy interfaces.IAccessPolicy,
) *TrackingUseCase {
	return &TrackingUseCase{
		repo:       repo,
		demandRepo: demandRepo,
		submitters: submitters,
		demands:    demands,
		policy:     policy,
	}
}

func (u *TrackingUseCase) CreateTracking(ctx context.Context, caller entities.Identity, in CreateTrackingInput) (TrackingWithDemand, error) {
	if err := u.policy.Authorize(ctx, caller); err != nil {
		return TrackingWithDemand{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}
	if err := validateTrackingFields(in.Hours, in.Nature); err != nil {
		return TrackingWithDemand{}, err
	}

	demand, err := u.demandRepo.GetByID(ctx, in.DemandID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if demand.ID == "" {
		return TrackingWithDemand{}, fmt.Errorf("%w: demand %s", ErrInvalidTrackingRef, in.DemandID)
	}

	// The blocked gate runs before the submitter lookup: a blocked demand is
	// reported as such even when the submitter id is also bad.
	if demand.Status == entities.DemandStatusBlocked {
		log.Printf("[tracking][usecase] rejected: demand %s is blocked", demand.ID)
		return TrackingWithDemand{}, ErrDemandBlocked
	}

	submitter, err := u.submitters.GetByID(ctx, in.SubmitterID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if submitter.ID == "" {
		return TrackingWithDemand{}, fmt.Errorf("%w: submitter %s", ErrInvalidTrackingRef, in.SubmitterID)
	}

	t := entities.Tracking{
		ID:          uuid.NewString(),
		DemandID:    demand.ID,
		Hours:       in.Hours,
		Nature:      in.Nature,
		Description: in.Description,
		SubmittedAt: in.SubmittedAt,
		SubmitterID: submitter.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		// The transactional condition re-checks the demand at commit time; a
		// concurrent block or delete lands here.
		if errors.Is(err, interfaces.ErrDemandUnavailable) {
			fresh, ferr := u.demandRepo.GetByID(ctx, in.DemandID)
			if ferr == nil && fresh.ID == "" {
				return TrackingWithDemand{}, fmt.Errorf("%w: demand %s", ErrInvalidTrackingRef, in.DemandID)
			}
			return TrackingWithDemand{}, ErrDemandBlocked
		}
		return TrackingWithDemand{}, err
	}
	return TrackingWithDemand{Tracking: created, Demand: demand, Submitter: submitter}, nil
}

// UpdateTracking replaces every field of an existing entry. Unlike create, it
// does not re-check the blocked gate on the target demand; entries already in
// flight can still be corrected after a demand is blocked.
func (u *TrackingUseCase) UpdateTracking(ctx context.Context, caller entities.Identity, in UpdateTrackingInput) (TrackingWithDemand, error) {
	if err := u.policy.Authorize(ctx, caller); err != nil {
		return TrackingWithDemand{}, fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}
	if err := validateTrackingFields(in.Hours, in.Nature); err != nil {
		return TrackingWithDemand{}, err
	}

	existing, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if existing.ID == "" {
		return TrackingWithDemand{}, ErrTrackingNotFound
	}

	demand, err := u.demandRepo.GetByID(ctx, in.DemandID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if demand.ID == "" {
		return TrackingWithDemand{}, fmt.Errorf("%w: demand %s", ErrInvalidTrackingRef, in.DemandID)
	}

	submitter, err := u.submitters.GetByID(ctx, in.SubmitterID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if submitter.ID == "" {
		return TrackingWithDemand{}, fmt.Errorf("%w: submitter %s", ErrInvalidTrackingRef, in.SubmitterID)
	}

	t := entities.Tracking{
		ID:          existing.ID,
		DemandID:    demand.ID,
		Hours:       in.Hours,
		Nature:      in.Nature,
		Description: in.Description,
		SubmittedAt: in.SubmittedAt,
		SubmitterID: submitter.ID,
		CreatedAt:   existing.CreatedAt,
	}

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		if errors.Is(err, interfaces.ErrItemGone) {
			return TrackingWithDemand{}, ErrTrackingNotFound
		}
		return TrackingWithDemand{}, err
	}
	return TrackingWithDemand{Tracking: updated, Demand: demand, Submitter: submitter}, nil
}

func (u *TrackingUseCase) DeleteTrackingByID(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.policy.Authorize(ctx, caller, entities.UserRoleAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrCallerNotAuthorized, err)
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrTrackingNotFound
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrItemGone) {
			return ErrTrackingNotFound
		}
		return err
	}
	return nil
}

func (u *TrackingUseCase) GetByID(ctx context.Context, id string) (TrackingWithDemand, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TrackingWithDemand{}, ErrTrackingNotFound
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	if t.ID == "" {
		return TrackingWithDemand{}, ErrTrackingNotFound
	}
	return u.compose(ctx, t)
}

func (u *TrackingUseCase) GetAll(ctx context.Context) ([]TrackingWithDemand, error) {
	ts, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.composeAll(ctx, ts)
}

func (u *TrackingUseCase) ListByDemandID(ctx context.Context, demandID string) ([]TrackingWithDemand, error) {
	ts, err := u.repo.ListByDemandID(ctx, demandID)
	if err != nil {
		return nil, err
	}
	return u.composeAll(ctx, ts)
}

func (u *TrackingUseCase) ListBySubmitterID(ctx context.Context, submitterID string) ([]TrackingWithDemand, error) {
	ts, err := u.repo.ListBySubmitterID(ctx, submitterID)
	if err != nil {
		return nil, err
	}
	return u.composeAll(ctx, ts)
}

func (u *TrackingUseCase) ListByNature(ctx context.Context, nature entities.Nature) ([]TrackingWithDemand, error) {
	if !entities.ValidNature(nature) {
		return nil, fmt.Errorf("%w: unknown nature %q", ErrInvalidTrackingData, nature)
	}
	ts, err := u.repo.ListByNature(ctx, nature)
	if err != nil {
		return nil, err
	}
	return u.composeAll(ctx, ts)
}

// TotalHoursByDemandID sums hours over every tracking entry of the demand.
// An unknown demand id is not an error: the total is simply 0.0.
func (u *TrackingUseCase) TotalHoursByDemandID(ctx context.Context, demandID string) (float64, error) {
	return u.repo.SumHoursByDemandID(ctx, demandID)
}

func (u *TrackingUseCase) TotalHoursByDemandIDAndNature(ctx context.Context, demandID string, nature entities.Nature) (float64, error) {
	if !entities.ValidNature(nature) {
		return 0, fmt.Errorf("%w: unknown nature %q", ErrInvalidTrackingData, nature)
	}
	return u.repo.SumHoursByDemandIDAndNature(ctx, demandID, nature)
}

// compose resolves the full demand projection through the demand use case so
// tracking reads carry the same shape the demand endpoints serve. Demand
// deletion does not cascade, so a tracking may outlive its demand; the
// projection stays zero-valued in that case instead of failing the read.
func (u *TrackingUseCase) compose(ctx context.Context, t entities.Tracking) (TrackingWithDemand, error) {
	demand, err := u.demands.GetByID(ctx, t.DemandID)
	if err != nil && !errors.Is(err, ErrDemandNotFound) {
		return TrackingWithDemand{}, err
	}
	submitter, err := u.submitters.GetByID(ctx, t.SubmitterID)
	if err != nil {
		return TrackingWithDemand{}, err
	}
	return TrackingWithDemand{Tracking: t, Demand: demand, Submitter: submitter}, nil
}

func (u *TrackingUseCase) composeAll(ctx context.Context, ts []entities.Tracking) ([]TrackingWithDemand, error) {
	out := make([]TrackingWithDemand, 0, len(ts))
	for _, t := range ts {
		c, err := u.compose(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func validateTrackingFields(hours float64, nature entities.Nature) error {
	if hours < 0 {
		return fmt.Errorf("%w: negative hours", ErrInvalidTrackingData)
	}
	if !entities.ValidNature(nature) {
		return fmt.Errorf("%w: unknown nature %q", ErrInvalidTrackingData, nature)
	}
	return nil
}
