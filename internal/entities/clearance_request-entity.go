package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// ClearanceRequest - заявка на передачу права собственности (إفراغ) на объект; проект только по имени.
type ClearanceRequest struct {
	ID               int64       `json:"id" db:"id"`
	ProjectName      string      `json:"project_name" db:"project_name"`
	ClientName       string      `json:"client_name" db:"client_name"`
	ClientNationalID string      `json:"client_national_id" db:"client_national_id"`
	ClientPhone      string      `json:"client_phone" db:"client_phone"`
	UnitNumber       string      `json:"unit_number" db:"unit_number"`
	Status           string      `json:"status" db:"status"`
	AssignedTo       null.String `json:"assigned_to" db:"assigned_to"`
	ImportBatchID    *uuid.UUID  `json:"import_batch_id,omitempty" db:"import_batch_id"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        null.Time   `json:"updated_at" db:"updated_at"`
}
