package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// TechnicalRequest ссылается на проект либо по id, либо только по имени.
type TechnicalRequest struct {
	ID          int64       `json:"id" db:"id"`
	ProjectID   null.Int64  `json:"project_id" db:"project_id"`
	ProjectName string      `json:"project_name" db:"project_name"`
	ServiceType string      `json:"service_type" db:"service_type"`
	Status      string      `json:"status" db:"status"`
	Progress    float64     `json:"progress" db:"progress"`
	AssignedTo  null.String `json:"assigned_to" db:"assigned_to"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   null.Time   `json:"updated_at" db:"updated_at"`
}
