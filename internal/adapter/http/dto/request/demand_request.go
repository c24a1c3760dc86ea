package request

import (
	"strings"
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
)

// DemandRequest is the write payload for demand create and update. Updates
// are full replacements; omitted optional fields are cleared, not kept.
type DemandRequest struct {
	Name         string     `json:"name" binding:"required"`
	DocHours     float64    `json:"doc_hours"`
	DevHours     float64    `json:"dev_hours"`
	Type         string     `json:"type" binding:"required"`
	Description  string     `json:"description"`
	FocalPointID string     `json:"focal_point_id" binding:"required"`
	AnalystID    string     `json:"analyst_id" binding:"required"`
	ProjectID    string     `json:"project_id" binding:"required"`
	RobotID      string     `json:"robot_id" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	OpenedAt     *time.Time `json:"opened_at"`
	StartAt      *time.Time `json:"start_at"`
	EndsAt       *time.Time `json:"ends_at"`
	EndedAt      *time.Time `json:"ended_at"`
	ROI          string     `json:"roi"`
	Client       string     `json:"client"`
	Service      string     `json:"service"`
}

func (r DemandRequest) ToCreateInput() usecase.CreateDemandInput {
	return usecase.CreateDemandInput{
		Name:         strings.TrimSpace(r.Name),
		DocHours:     r.DocHours,
		DevHours:     r.DevHours,
		Type:         entities.ServiceType(r.Type),
		Description:  r.Description,
		FocalPointID: r.FocalPointID,
		AnalystID:    r.AnalystID,
		ProjectID:    r.ProjectID,
		RobotID:      r.RobotID,
		Status:       entities.DemandStatus(r.Status),
		OpenedAt:     r.OpenedAt,
		StartAt:      r.StartAt,
		EndsAt:       r.EndsAt,
		ROI:          r.ROI,
		Client:       r.Client,
		Service:      r.Service,
	}
}

func (r DemandRequest) ToUpdateInput(id string) usecase.UpdateDemandInput {
	return usecase.UpdateDemandInput{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		DocHours:     r.DocHours,
		DevHours:     r.DevHours,
		Type:         entities.ServiceType(r.Type),
		Description:  r.Description,
		FocalPointID: r.FocalPointID,
		AnalystID:    r.AnalystID,
		ProjectID:    r.ProjectID,
		RobotID:      r.RobotID,
		Status:       entities.DemandStatus(r.Status),
		OpenedAt:     r.OpenedAt,
		StartAt:      r.StartAt,
		EndsAt:       r.EndsAt,
		EndedAt:      r.EndedAt,
		ROI:          r.ROI,
		Client:       r.Client,
		Service:      r.Service,
	}
}
