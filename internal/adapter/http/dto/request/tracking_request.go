package request

import (
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
)

// TrackingRequest is the write payload for tracking create and update.
// SubmittedAt is the date the work happened, supplied by the caller.
type TrackingRequest struct {
	DemandID    string    `json:"demand_id" binding:"required"`
	Hours       float64   `json:"hours" binding:"required"`
	Nature      string    `json:"nature" binding:"required"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at" binding:"required"`
	SubmitterID string    `json:"submitter_id" binding:"required"`
}

func (r TrackingRequest) ToCreateInput() usecase.CreateTrackingInput {
	return usecase.CreateTrackingInput{
		DemandID:    r.DemandID,
		Hours:       r.Hours,
		Nature:      entities.Nature(r.Nature),
		Description: r.Description,
		SubmittedAt: r.SubmittedAt,
		SubmitterID: r.SubmitterID,
	}
}

func (r TrackingRequest) ToUpdateInput(id string) usecase.UpdateTrackingInput {
	return usecase.UpdateTrackingInput{
		ID:          id,
		DemandID:    r.DemandID,
		Hours:       r.Hours,
		Nature:      entities.Nature(r.Nature),
		Description: r.Description,
		SubmittedAt: r.SubmittedAt,
		SubmitterID: r.SubmitterID,
	}
}
