package response

import (
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
)

// TrackingResponse embeds the full demand projection: reading an entry always
// returns the demand it was logged against, not just its id.
type TrackingResponse struct {
	ID          string            `json:"id"`
	Hours       float64           `json:"hours"`
	Nature      string            `json:"nature"`
	Description string            `json:"description"`
	SubmittedAt time.Time         `json:"submitted_at"`
	CreatedAt   time.Time         `json:"created_at"`
	Demand      DemandResponse    `json:"demand"`
	Submitter   SubmitterResponse `json:"submitter"`
}

func FromTracking(t usecase.TrackingWithDemand) TrackingResponse {
	return TrackingResponse{
		ID:          t.Tracking.ID,
		Hours:       t.Tracking.Hours,
		Nature:      string(t.Tracking.Nature),
		Description: t.Tracking.Description,
		SubmittedAt: t.Tracking.SubmittedAt,
		CreatedAt:   t.Tracking.CreatedAt,
		Demand:      FromDemand(t.Demand),
		Submitter:   FromSubmitter(t.Submitter),
	}
}

func FromTrackings(ts []usecase.TrackingWithDemand) []TrackingResponse {
	out := make([]TrackingResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTracking(t))
	}
	return out
}

// TotalHoursResponse is the aggregation shape for the hour-total endpoints.
type TotalHoursResponse struct {
	DemandID string  `json:"demand_id"`
	Nature   string  `json:"nature,omitempty"`
	Total    float64 `json:"total"`
}

func FromTotalHours(demandID string, nature entities.Nature, total float64) TotalHoursResponse {
	return TotalHoursResponse{DemandID: demandID, Nature: string(nature), Total: total}
}
