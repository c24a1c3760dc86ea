package entities

import "time"

// Nature classifies a tracked unit of effort.

type Nature string

const (
	NatureDocumentacao    Nature = "DOCUMENTACAO"
	NatureDesenvolvimento Nature = "DESENVOLVIMENTO"
)

// ValidNature reports whether n is a member of the closed nature set.
func ValidNature(n Nature) bool {
	return n == NatureDocumentacao || n == NatureDesenvolvimento
}

// Tracking is one logged entry of hours spent against a demand.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (demand_id-index): demand_id
//   - GSI2 (submitter_id-index): submitter_id
//
// SubmittedAt is a caller-supplied date, not a server timestamp; CreatedAt is
// set by the service at creation time.

type Tracking struct {
	ID          string    `json:"id"`
	DemandID    string    `json:"demand_id"`
	Hours       float64   `json:"hours"`
	Nature      Nature    `json:"nature"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
	SubmitterID string    `json:"submitter_id"`
	CreatedAt   time.Time `json:"created_at"`
}
