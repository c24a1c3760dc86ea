package request

import (
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
)

type MelhoriaDetailsRequest struct {
	RobotName        string `json:"robot_name" binding:"required"`
	CurrentBehavior  string `json:"current_behavior"`
	ExpectedBehavior string `json:"expected_behavior" binding:"required"`
}

type SustentacaoDetailsRequest struct {
	RobotName     string     `json:"robot_name" binding:"required"`
	Incident      string     `json:"incident" binding:"required"`
	OccurredAt    *time.Time `json:"occurred_at"`
	HasEvidencias bool       `json:"has_evidencias"`
}

type NovoProjetoDetailsRequest struct {
	ProcessName      string `json:"process_name" binding:"required"`
	ProcessFrequency string `json:"process_frequency"`
	EstimatedVolume  string `json:"estimated_volume"`
	Systems          string `json:"systems"`
}

// ServiceRequestRequest is the intake payload. The details group must match
// kind; the submitting user comes from the bearer token, not from the body.
type ServiceRequestRequest struct {
	Kind        string                     `json:"kind" binding:"required"`
	Title       string                     `json:"title" binding:"required"`
	Description string                     `json:"description"`
	Department  string                     `json:"department"`
	Company     string                     `json:"company"`
	Technology  string                     `json:"technology"`
	Melhoria    *MelhoriaDetailsRequest    `json:"melhoria"`
	Sustentacao *SustentacaoDetailsRequest `json:"sustentacao"`
	NovoProjeto *NovoProjetoDetailsRequest `json:"novo_projeto"`
}

func (r ServiceRequestRequest) ToInput() usecase.CreateRequestInput {
	in := usecase.CreateRequestInput{
		Kind:        entities.RequestKind(r.Kind),
		Title:       r.Title,
		Description: r.Description,
		Department:  r.Department,
		Company:     r.Company,
		Technology:  r.Technology,
	}
	if r.Melhoria != nil {
		in.Melhoria = &entities.MelhoriaDetails{
			RobotName:        r.Melhoria.RobotName,
			CurrentBehavior:  r.Melhoria.CurrentBehavior,
			ExpectedBehavior: r.Melhoria.ExpectedBehavior,
		}
	}
	if r.Sustentacao != nil {
		in.Sustentacao = &entities.SustentacaoDetails{
			RobotName:     r.Sustentacao.RobotName,
			Incident:      r.Sustentacao.Incident,
			OccurredAt:    r.Sustentacao.OccurredAt,
			HasEvidencias: r.Sustentacao.HasEvidencias,
		}
	}
	if r.NovoProjeto != nil {
		in.NovoProjeto = &entities.NovoProjetoDetails{
			ProcessName:      r.NovoProjeto.ProcessName,
			ProcessFrequency: r.NovoProjeto.ProcessFrequency,
			EstimatedVolume:  r.NovoProjeto.EstimatedVolume,
			Systems:          r.NovoProjeto.Systems,
		}
	}
	return in
}
