package interfaces

import (
	"context"

	"rpa_chamados/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for service requests.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	GetAll(ctx context.Context) ([]entities.Request, error)
	ListBySubmitterID(ctx context.Context, submitterID string) ([]entities.Request, error)
	DeleteByID(ctx context.Context, id string) error
}

// IDpRepository reads the DP data-warehouse dimension projections. The rows
// are owned by an external warehouse load; this system never writes them.

type IDpRepository interface {
	ListCells(ctx context.Context) ([]entities.DpDimension, error)
	ListClientsByCell(ctx context.Context, cellID string) ([]entities.DpDimension, error)
	ListServicesByCellAndClient(ctx context.Context, cellID, clientID string) ([]entities.DpDimension, error)
}
