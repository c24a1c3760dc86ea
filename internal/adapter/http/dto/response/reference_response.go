package response

import (
	"time"

	"rpa_chamados/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Area        string `json:"area,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Area:        p.Area,
		ClientID:    p.ClientID,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type RobotResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Cell          string `json:"cell,omitempty"`
	Technology    string `json:"technology,omitempty"`
	ExecutionType string `json:"execution_type,omitempty"`
	Client        string `json:"client,omitempty"`
	Status        string `json:"status,omitempty"`
}

func FromRobot(r entities.Robot) RobotResponse {
	return RobotResponse{
		ID:            r.ID,
		Name:          r.Name,
		Cell:          r.Cell,
		Technology:    r.Technology,
		ExecutionType: string(r.ExecutionType),
		Client:        r.Client,
		Status:        string(r.Status),
	}
}

func FromRobots(rs []entities.Robot) []RobotResponse {
	out := make([]RobotResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRobot(r))
	}
	return out
}

type DpDimensionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromDpDimensions(ds []entities.DpDimension) []DpDimensionResponse {
	out := make([]DpDimensionResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DpDimensionResponse{ID: d.ID, Name: d.Name})
	}
	return out
}
