package interfaces

import (
	"context"

	"rpa_chamados/internal/domain/entities"
)

// ITrackingRepository abstracts DynamoDB persistence for Tracking.
//
// Create must pair the tracking put with a condition check on the referenced
// demand (exists and not BLOCKED) in one transaction, returning
// ErrDemandUnavailable when the check fails. Update performs no such check.

type ITrackingRepository interface {
	Create(ctx context.Context, t entities.Tracking) (entities.Tracking, error)
	Update(ctx context.Context, t entities.Tracking) (entities.Tracking, error)
	GetByID(ctx context.Context, id string) (entities.Tracking, error)
	GetAll(ctx context.Context) ([]entities.Tracking, error)
	DeleteByID(ctx context.Context, id string) error
	// ListByDemandID and ListBySubmitterID return entries ordered by
	// SubmittedAt descending.
	ListByDemandID(ctx context.Context, demandID string) ([]entities.Tracking, error)
	ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Tracking, error)
	ListByNature(ctx context.Context, nature entities.Nature) ([]entities.Tracking, error)
	SumHoursByDemandID(ctx context.Context, demandID string) (float64, error)
	SumHoursByDemandIDAndNature(ctx context.Context, demandID string, nature entities.Nature) (float64, error)
}
