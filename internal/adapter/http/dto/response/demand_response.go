package response

import (
	"time"

	"rpa_chamados/internal/domain/entities"
)

type DemandResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	DocHours     float64    `json:"doc_hours"`
	DevHours     float64    `json:"dev_hours"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	FocalPointID string     `json:"focal_point_id"`
	AnalystID    string     `json:"analyst_id"`
	ProjectID    string     `json:"project_id"`
	RobotID      string     `json:"robot_id"`
	Status       string     `json:"status"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ROI          string     `json:"roi,omitempty"`
	Client       string     `json:"client,omitempty"`
	Service      string     `json:"service,omitempty"`
}

func FromDemand(d entities.Demand) DemandResponse {
	return DemandResponse{
		ID:           d.ID,
		Name:         d.Name,
		DocHours:     d.DocHours,
		DevHours:     d.DevHours,
		Type:         string(d.Type),
		Description:  d.Description,
		FocalPointID: d.FocalPointID,
		AnalystID:    d.AnalystID,
		ProjectID:    d.ProjectID,
		RobotID:      d.RobotID,
		Status:       string(d.Status),
		OpenedAt:     d.OpenedAt,
		StartAt:      d.StartAt,
		EndsAt:       d.EndsAt,
		EndedAt:      d.EndedAt,
		CreatedAt:    d.CreatedAt,
		ROI:          d.ROI,
		Client:       d.Client,
		Service:      d.Service,
	}
}

func FromDemands(ds []entities.Demand) []DemandResponse {
	out := make([]DemandResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDemand(d))
	}
	return out
}
