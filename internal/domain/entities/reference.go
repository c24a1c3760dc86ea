package entities

import "time"

// Reference data: clients, projects and robots are the master records demands
// point at. They carry simple existence and name-uniqueness rules only.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Area        string `json:"area,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
}

// ExecutionType is how a robot runs: attended by a human or unattended.

type ExecutionType string

const (
	ExecutionTypeAttended   ExecutionType = "ATTENDED"
	ExecutionTypeUnattended ExecutionType = "UNATTENDED"
)

// RobotStatus is the operational state of a robot.

type RobotStatus string

const (
	RobotStatusActive      RobotStatus = "ACTIVE"
	RobotStatusInactive    RobotStatus = "INACTIVE"
	RobotStatusMaintenance RobotStatus = "MAINTENANCE"
)

type Robot struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Cell          string        `json:"cell,omitempty"`
	Technology    string        `json:"technology,omitempty"`
	ExecutionType ExecutionType `json:"execution_type,omitempty"`
	Client        string        `json:"client,omitempty"`
	Status        RobotStatus   `json:"status,omitempty"`
}

// DpDimension is a read-only row from the DP data-warehouse dimension table.
// Demand.Client and Demand.Service hold ids from this space.

type DpDimension struct {
	CellID   string `json:"cell_id"`
	ClientID string `json:"client_id,omitempty"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
}
