package entities

import "time"

// UserRole gates access to administrative operations.

type UserRole string

const (
	UserRoleDefault UserRole = "DEFAULT"
	UserRoleAdmin   UserRole = "ADMIN"
)

// Submitter is the person who submits requests and tracks hours.
//
// The system keeps a single submitter table: the same record serves as "form
// respondent" identity and as role-bearing account. Role is the free-text job
// title shown in the UI; UserRole is what authorization decisions use.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type Submitter struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Department        string     `json:"department,omitempty"`
	Company           string     `json:"company,omitempty"`
	Role              string     `json:"role,omitempty"`
	UserRole          UserRole   `json:"user_role"`
	IsActive          bool       `json:"is_active"`
	RequestsSubmitted int        `json:"requests_submitted"`
	LastActivity      *time.Time `json:"last_activity,omitempty"`
	JoinedAt          time.Time  `json:"joined_at"`
}

// Identity is the verified caller identity extracted from a bearer token.
// Core operations receive it explicitly; there is no ambient security context.

type Identity struct {
	SubjectID   string `json:"subject_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
