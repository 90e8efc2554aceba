package dto

import (
	"github.com/google/uuid"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/entities"
)

type CreateClearanceRequestDTO struct {
	ProjectName      string `json:"project_name" validate:"required,max=255"`
	ClientName       string `json:"client_name" validate:"required,max=255"`
	ClientNationalID string `json:"client_national_id" validate:"omitempty,numeric,len=10"`
	ClientPhone      string `json:"client_phone" validate:"omitempty,sa_phone"`
	UnitNumber       string `json:"unit_number" validate:"max=50"`
	Status           string `json:"status" validate:"required,max=100"`
	AssignedTo       string `json:"assigned_to" validate:"max=255"`
}

func (d CreateClearanceRequestDTO) ToEntity() entities.ClearanceRequest {
	c := entities.ClearanceRequest{
		ProjectName:      d.ProjectName,
		ClientName:       d.ClientName,
		ClientNationalID: d.ClientNationalID,
		ClientPhone:      d.ClientPhone,
		UnitNumber:       d.UnitNumber,
		Status:           d.Status,
	}
	setNullString(&c.AssignedTo, &d.AssignedTo)
	return c
}

type UpdateClearanceRequestDTO struct {
	ProjectName      *string `json:"project_name,omitempty" validate:"omitempty,max=255"`
	ClientName       *string `json:"client_name,omitempty" validate:"omitempty,max=255"`
	ClientNationalID *string `json:"client_national_id,omitempty" validate:"omitempty,numeric,len=10"`
	ClientPhone      *string `json:"client_phone,omitempty" validate:"omitempty,sa_phone"`
	UnitNumber       *string `json:"unit_number,omitempty" validate:"omitempty,max=50"`
	Status           *string `json:"status,omitempty" validate:"omitempty,max=100"`
	AssignedTo       *string `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
}

func (d UpdateClearanceRequestDTO) Apply(c *entities.ClearanceRequest) {
	setString(&c.ProjectName, d.ProjectName)
	setString(&c.ClientName, d.ClientName)
	setString(&c.ClientNationalID, d.ClientNationalID)
	setString(&c.ClientPhone, d.ClientPhone)
	setString(&c.UnitNumber, d.UnitNumber)
	setString(&c.Status, d.Status)
	setNullString(&c.AssignedTo, d.AssignedTo)
}

type ClearanceRequestDTO struct {
	entities.ClearanceRequest
	Category dashboard.Category `json:"category"`
}

func NewClearanceRequestDTO(c entities.ClearanceRequest) ClearanceRequestDTO {
	return ClearanceRequestDTO{ClearanceRequest: c, Category: dashboard.NormalizeStatus(c.Status)}
}

// ImportRowError - ошибка конкретной строки Excel (нумерация как в файле, с 1).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResultDTO struct {
	BatchID  uuid.UUID        `json:"batch_id"`
	Inserted int              `json:"inserted"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}
