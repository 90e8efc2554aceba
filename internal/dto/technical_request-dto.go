package dto

import (
	"github.com/aarondl/null/v8"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/entities"
)

type CreateTechnicalRequestDTO struct {
	ProjectID   *int64  `json:"project_id" validate:"omitempty,gt=0"`
	ProjectName string  `json:"project_name" validate:"required_without=ProjectID,max=255"`
	ServiceType string  `json:"service_type" validate:"max=100"`
	Status      string  `json:"status" validate:"required,max=100"`
	Progress    float64 `json:"progress" validate:"percent"`
	AssignedTo  string  `json:"assigned_to" validate:"max=255"`
}

func (d CreateTechnicalRequestDTO) ToEntity() entities.TechnicalRequest {
	t := entities.TechnicalRequest{
		ProjectID:   null.Int64FromPtr(d.ProjectID),
		ProjectName: d.ProjectName,
		ServiceType: d.ServiceType,
		Status:      d.Status,
		Progress:    d.Progress,
	}
	setNullString(&t.AssignedTo, &d.AssignedTo)
	return t
}

// UpdateTechnicalRequestDTO меняет статус, прогресс и исполнителя; пустой assigned_to снимает исполнителя.
type UpdateTechnicalRequestDTO struct {
	ProjectID   *int64   `json:"project_id,omitempty" validate:"omitempty,gt=0"`
	ProjectName *string  `json:"project_name,omitempty" validate:"omitempty,max=255"`
	ServiceType *string  `json:"service_type,omitempty" validate:"omitempty,max=100"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,max=100"`
	Progress    *float64 `json:"progress,omitempty" validate:"omitempty,percent"`
	AssignedTo  *string  `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
}

func (d UpdateTechnicalRequestDTO) Apply(t *entities.TechnicalRequest) {
	if d.ProjectID != nil {
		t.ProjectID = null.Int64From(*d.ProjectID)
	}
	setString(&t.ProjectName, d.ProjectName)
	setString(&t.ServiceType, d.ServiceType)
	setString(&t.Status, d.Status)
	if d.Progress != nil {
		t.Progress = *d.Progress
	}
	setNullString(&t.AssignedTo, d.AssignedTo)
}

type TechnicalRequestDTO struct {
	entities.TechnicalRequest
	Category dashboard.Category `json:"category"`
}

func NewTechnicalRequestDTO(t entities.TechnicalRequest) TechnicalRequestDTO {
	return TechnicalRequestDTO{TechnicalRequest: t, Category: dashboard.NormalizeStatus(t.Status)}
}

// RequestListQueryDTO - фильтры списков заявок.
type RequestListQueryDTO struct {
	ProjectID   int64  `query:"project_id" validate:"omitempty,gt=0"`
	ProjectName string `query:"project_name" validate:"max=255"`
	Search      string `query:"search" validate:"max=100"`
	Limit       uint64 `query:"limit" validate:"omitempty,max=500"`
}
