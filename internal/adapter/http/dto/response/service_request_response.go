package response

import (
	"time"

	"rpa_chamados/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID          string                       `json:"id"`
	Kind        string                       `json:"kind"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Department  string                       `json:"department,omitempty"`
	Technology  string                       `json:"technology,omitempty"`
	SubmitterID string                       `json:"submitter_id"`
	CreatedAt   time.Time                    `json:"created_at"`
	Melhoria    *entities.MelhoriaDetails    `json:"melhoria,omitempty"`
	Sustentacao *entities.SustentacaoDetails `json:"sustentacao,omitempty"`
	NovoProjeto *entities.NovoProjetoDetails `json:"novo_projeto,omitempty"`
}

func FromServiceRequest(r entities.Request) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		Title:       r.Title,
		Description: r.Description,
		Department:  r.Department,
		Technology:  r.Technology,
		SubmitterID: r.SubmitterID,
		CreatedAt:   r.CreatedAt,
		Melhoria:    r.Melhoria,
		Sustentacao: r.Sustentacao,
		NovoProjeto: r.NovoProjeto,
	}
}

func FromServiceRequests(rs []entities.Request) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}
