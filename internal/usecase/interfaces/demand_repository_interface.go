package interfaces

import (
	"context"
	"errors"

	"rpa_chamados/internal/domain/entities"
)

// Storage-level sentinel errors. Repositories translate DynamoDB conditional
// failures into these so use cases can keep their validation errors precise
// even when a concurrent writer wins the race between the validation read and
// the transactional write.
var (
	// ErrDuplicateName means a name-guard condition failed: another item
	// already owns the name.
	ErrDuplicateName = errors.New("name already in use")
	// ErrItemGone means the item addressed by the write no longer exists.
	ErrItemGone = errors.New("item no longer exists")
	// ErrDemandUnavailable means the demand condition check of a tracking
	// write failed: the demand is missing or BLOCKED.
	ErrDemandUnavailable = errors.New("demand missing or blocked")
)

// IDemandRepository abstracts DynamoDB persistence for Demand.
//
// Create and Update must commit the demand item and its name-guard item in a
// single transaction; DeleteByID removes both. GetByID returns a zero-value
// Demand when the id does not resolve.

type IDemandRepository interface {
	Create(ctx context.Context, d entities.Demand) (entities.Demand, error)
	// Update replaces the stored demand. previousName is the name currently
	// on record; when it differs from d.Name the guard items are swapped in
	// the same transaction.
	Update(ctx context.Context, d entities.Demand, previousName string) (entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	GetAll(ctx context.Context) ([]entities.Demand, error)
	// GetNameOwner returns the id of the demand owning name, or "" when the
	// name is free.
	GetNameOwner(ctx context.Context, name string) (string, error)
	DeleteByID(ctx context.Context, id, name string) error
	ListByStatus(ctx context.Context, status entities.DemandStatus) ([]entities.Demand, error)
	ListByType(ctx context.Context, t entities.ServiceType) ([]entities.Demand, error)
	ListByAnalystID(ctx context.Context, analystID string) ([]entities.Demand, error)
	ListByFocalPointID(ctx context.Context, focalPointID string) ([]entities.Demand, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Demand, error)
	ListByRobotID(ctx context.Context, robotID string) ([]entities.Demand, error)
	ListByClient(ctx context.Context, client string) ([]entities.Demand, error)
	ListByService(ctx context.Context, service string) ([]entities.Demand, error)
}
