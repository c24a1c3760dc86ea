package entities

import "time"

// DemandStatus is the delivery lifecycle of a demand.
//
// Domain notes:
//   - The intended forward path is BACKLOG -> ASSESSMENT -> COST_APPROVAL ->
//     DEVELOPING -> DEPLOYING -> CLIENT_APPROVAL -> COMPLETED, with BLOCKED and
//     CANCELED reachable as side states.
//   - No transition table is enforced. The only transition-sensitive rule in
//     the system is the tracking gate: no new tracking against a BLOCKED demand.

type DemandStatus string

const (
	DemandStatusBacklog        DemandStatus = "BACKLOG"
	DemandStatusAssessment     DemandStatus = "ASSESSMENT"
	DemandStatusCostApproval   DemandStatus = "COST_APPROVAL"
	DemandStatusDeveloping     DemandStatus = "DEVELOPING"
	DemandStatusDeploying      DemandStatus = "DEPLOYING"
	DemandStatusClientApproval DemandStatus = "CLIENT_APPROVAL"
	DemandStatusCompleted      DemandStatus = "COMPLETED"
	DemandStatusBlocked        DemandStatus = "BLOCKED"
	DemandStatusCanceled       DemandStatus = "CANCELED"
)

// ValidDemandStatus reports whether s is a member of the closed status set.
func ValidDemandStatus(s DemandStatus) bool {
	switch s {
	case DemandStatusBacklog, DemandStatusAssessment, DemandStatusCostApproval,
		DemandStatusDeveloping, DemandStatusDeploying, DemandStatusClientApproval,
		DemandStatusCompleted, DemandStatusBlocked, DemandStatusCanceled:
		return true
	}
	return false
}

// ServiceType classifies the kind of RPA service a demand delivers.

type ServiceType string

const (
	ServiceTypeMelhoria    ServiceType = "MELHORIA"
	ServiceTypeSustentacao ServiceType = "SUSTENTACAO"
	ServiceTypeNovoProjeto ServiceType = "NOVO_PROJETO"
)

// ValidServiceType reports whether t is a member of the closed type set.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeMelhoria, ServiceTypeSustentacao, ServiceTypeNovoProjeto:
		return true
	}
	return false
}

// Demand is a unit of RPA delivery work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - name uniqueness enforced through a guard item in the demand_names table,
//     written transactionally with the demand itself
//
// Client and Service are opaque dimension ids from the DP data warehouse; they
// are recorded as-is and never validated against this system's tables.
//
// The date fields (OpenedAt, StartAt, EndsAt, EndedAt) are advisory: no
// chronological ordering is enforced between them.

type Demand struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DocHours     float64      `json:"doc_hours"`
	DevHours     float64      `json:"dev_hours"`
	Type         ServiceType  `json:"type"`
	Description  string       `json:"description"`
	FocalPointID string       `json:"focal_point_id"`
	AnalystID    string       `json:"analyst_id"`
	ProjectID    string       `json:"project_id"`
	RobotID      string       `json:"robot_id"`
	Status       DemandStatus `json:"status"`
	OpenedAt     *time.Time   `json:"opened_at,omitempty"`
	StartAt      *time.Time   `json:"start_at,omitempty"`
	EndsAt       *time.Time   `json:"ends_at,omitempty"`
	EndedAt      *time.Time   `json:"ended_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	ROI          string       `json:"roi"`
	Client       string       `json:"client"`
	Service      string       `json:"service"`
}
