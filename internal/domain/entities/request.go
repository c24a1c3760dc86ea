package entities

import "time"

// RequestKind tags the service-request variant. The original intake form has
// three flavors sharing a common envelope; kind-specific fields live in
// optional groups on the Request struct rather than in separate entities.

type RequestKind string

const (
	RequestKindMelhoria    RequestKind = "MELHORIA"
	RequestKindSustentacao RequestKind = "SUSTENTACAO"
	RequestKindNovoProjeto RequestKind = "NOVO_PROJETO"
)

// ValidRequestKind reports whether k is a member of the closed kind set.
func ValidRequestKind(k RequestKind) bool {
	switch k {
	case RequestKindMelhoria, RequestKindSustentacao, RequestKindNovoProjeto:
		return true
	}
	return false
}

// MelhoriaDetails carries the fields specific to improvement requests.
type MelhoriaDetails struct {
	RobotName        string `json:"robot_name"`
	CurrentBehavior  string `json:"current_behavior"`
	ExpectedBehavior string `json:"expected_behavior"`
}

// SustentacaoDetails carries the fields specific to maintenance requests.
type SustentacaoDetails struct {
	RobotName     string     `json:"robot_name"`
	Incident      string     `json:"incident"`
	OccurredAt    *time.Time `json:"occurred_at,omitempty"`
	HasEvidencias bool       `json:"has_evidencias"`
}

// NovoProjetoDetails carries the fields specific to new-project requests.
type NovoProjetoDetails struct {
	ProcessName      string `json:"process_name"`
	ProcessFrequency string `json:"process_frequency"`
	EstimatedVolume  string `json:"estimated_volume"`
	Systems          string `json:"systems"`
}

// Request is a submitted service request (chamado). Exactly one of the
// details groups is set, matching Kind.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (submitter_id-index): submitter_id

type Request struct {
	ID          string              `json:"id"`
	Kind        RequestKind         `json:"kind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Department  string              `json:"department,omitempty"`
	Technology  string              `json:"technology,omitempty"`
	SubmitterID string              `json:"submitter_id"`
	CreatedAt   time.Time           `json:"created_at"`
	Melhoria    *MelhoriaDetails    `json:"melhoria,omitempty"`
	Sustentacao *SustentacaoDetails `json:"sustentacao,omitempty"`
	NovoProjeto *NovoProjetoDetails `json:"novo_projeto,omitempty"`
}
