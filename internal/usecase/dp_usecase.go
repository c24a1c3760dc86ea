package usecase

import (
	"context"
	"errors"
	"strings"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
)

var ErrInvalidDpQuery = errors.New("invalid dp query")

// IDpUseCase serves the DP data-warehouse dimension lookups that back the
// cascading cell -> client -> service selects on the demand form.

type IDpUseCase interface {
	ListCells(ctx context.Context) ([]entities.DpDimension, error)
	ListClientsByCell(ctx context.Context, cellID string) ([]entities.DpDimension, error)
	ListServicesByCellAndClient(ctx context.Context, cellID, clientID string) ([]entities.DpDimension, error)
}

type DpUseCase struct {
	repo interfaces.IDpRepository
}

var _ IDpUseCase = (*DpUseCase)(nil)

func NewDpUseCase(repo interfaces.IDpRepository) *DpUseCase {
	return &DpUseCase{repo: repo}
}

func (u *DpUseCase) ListCells(ctx context.Context) ([]entities.DpDimension, error) {
	return u.repo.ListCells(ctx)
}

func (u *DpUseCase) ListClientsByCell(ctx context.Context, cellID string) ([]entities.DpDimension, error) {
	cellID = strings.TrimSpace(cellID)
	if cellID == "" {
		return nil, ErrInvalidDpQuery
	}
	return u.repo.ListClientsByCell(ctx, cellID)
}

func (u *DpUseCase) ListServicesByCellAndClient(ctx context.Context, cellID, clientID string) ([]entities.DpDimension, error) {
	cellID = strings.TrimSpace(cellID)
	clientID = strings.TrimSpace(clientID)
	if cellID == "" || clientID == "" {
		return nil, ErrInvalidDpQuery
	}
	return u.repo.ListServicesByCellAndClient(ctx, cellID, clientID)
}
