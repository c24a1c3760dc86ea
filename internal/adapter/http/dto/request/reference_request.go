package request

import (
	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
)

type ClientRequest struct {
	Name string `json:"name" binding:"required"`
}

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Area        string `json:"area"`
	ClientID    string `json:"client_id"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Area:        r.Area,
		ClientID:    r.ClientID,
	}
}

type RobotRequest struct {
	Name          string `json:"name" binding:"required"`
	Cell          string `json:"cell"`
	Technology    string `json:"technology"`
	ExecutionType string `json:"execution_type"`
	Client        string `json:"client"`
	Status        string `json:"status"`
}

func (r RobotRequest) ToInput() usecase.RobotInput {
	return usecase.RobotInput{
		Name:          r.Name,
		Cell:          r.Cell,
		Technology:    r.Technology,
		ExecutionType: entities.ExecutionType(r.ExecutionType),
		Client:        r.Client,
		Status:        entities.RobotStatus(r.Status),
	}
}

// SubmitterStatusRequest toggles a submitter's active flag.
type SubmitterStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
