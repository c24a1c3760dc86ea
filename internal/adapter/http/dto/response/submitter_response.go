package response

import (
	"time"

	"rpa_chamados/internal/domain/entities"
)

type SubmitterResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Department        string     `json:"department,omitempty"`
	Company           string     `json:"company,omitempty"`
	Role              string     `json:"role,omitempty"`
	UserRole          string     `json:"user_role"`
	IsActive          bool       `json:"is_active"`
	RequestsSubmitted int        `json:"requests_submitted"`
	LastActivity      *time.Time `json:"last_activity,omitempty"`
	JoinedAt          time.Time  `json:"joined_at"`
}

func FromSubmitter(s entities.Submitter) SubmitterResponse {
	return SubmitterResponse{
		ID:                s.ID,
		Name:              s.Name,
		Email:             s.Email,
		Phone:             s.Phone,
		Department:        s.Department,
		Company:           s.Company,
		Role:              s.Role,
		UserRole:          string(s.UserRole),
		IsActive:          s.IsActive,
		RequestsSubmitted: s.RequestsSubmitted,
		LastActivity:      s.LastActivity,
		JoinedAt:          s.JoinedAt,
	}
}

func FromSubmitters(ss []entities.Submitter) []SubmitterResponse {
	out := make([]SubmitterResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSubmitter(s))
	}
	return out
}
