package dto

import (
	"github.com/aarondl/null/v8"

	"project-dashboard/internal/dashboard"
	"project-dashboard/internal/entities"
)

type CreateProjectDTO struct {
	Name     string  `json:"name" validate:"required_without_all=Title Client,max=255"`
	Client   string  `json:"client" validate:"max=255"`
	Title    string  `json:"title" validate:"max=255"`
	Status   string  `json:"status" validate:"required,max=100"`
	Progress float64 `json:"progress" validate:"percent"`

	Units                 int `json:"units" validate:"gte=0"`
	ElectricityMeters     int `json:"electricity_meters" validate:"gte=0"`
	WaterMeters           int `json:"water_meters" validate:"gte=0"`
	BuildingPermits       int `json:"building_permits" validate:"gte=0"`
	OccupancyCertificates int `json:"occupancy_certificates" validate:"gte=0"`
	SurveyDecisions       int `json:"survey_decisions" validate:"gte=0"`

	ConsultantName  string `json:"consultant_name" validate:"max=255"`
	ConsultantPhone string `json:"consultant_phone" validate:"omitempty,sa_phone"`
	ContractorName  string `json:"contractor_name" validate:"max=255"`
	ContractorPhone string `json:"contractor_phone" validate:"omitempty,sa_phone"`
}

func (d CreateProjectDTO) ToEntity() entities.Project {
	return entities.Project{
		Name:                  d.Name,
		Client:                d.Client,
		Title:                 d.Title,
		Status:                d.Status,
		Progress:              d.Progress,
		Units:                 d.Units,
		ElectricityMeters:     d.ElectricityMeters,
		WaterMeters:           d.WaterMeters,
		BuildingPermits:       d.BuildingPermits,
		OccupancyCertificates: d.OccupancyCertificates,
		SurveyDecisions:       d.SurveyDecisions,
		ConsultantName:        d.ConsultantName,
		ConsultantPhone:       d.ConsultantPhone,
		ContractorName:        d.ContractorName,
		ContractorPhone:       d.ContractorPhone,
	}
}

// UpdateProjectDTO - частичное обновление, nil-поля не трогаются.
type UpdateProjectDTO struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Client   *string  `json:"client,omitempty" validate:"omitempty,max=255"`
	Title    *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Status   *string  `json:"status,omitempty" validate:"omitempty,max=100"`
	Progress *float64 `json:"progress,omitempty" validate:"omitempty,percent"`

	Units                 *int `json:"units,omitempty" validate:"omitempty,gte=0"`
	ElectricityMeters     *int `json:"electricity_meters,omitempty" validate:"omitempty,gte=0"`
	WaterMeters           *int `json:"water_meters,omitempty" validate:"omitempty,gte=0"`
	BuildingPermits       *int `json:"building_permits,omitempty" validate:"omitempty,gte=0"`
	OccupancyCertificates *int `json:"occupancy_certificates,omitempty" validate:"omitempty,gte=0"`
	SurveyDecisions       *int `json:"survey_decisions,omitempty" validate:"omitempty,gte=0"`

	ConsultantName  *string `json:"consultant_name,omitempty" validate:"omitempty,max=255"`
	ConsultantPhone *string `json:"consultant_phone,omitempty" validate:"omitempty,sa_phone"`
	ContractorName  *string `json:"contractor_name,omitempty" validate:"omitempty,max=255"`
	ContractorPhone *string `json:"contractor_phone,omitempty" validate:"omitempty,sa_phone"`
}

func (d UpdateProjectDTO) Apply(p *entities.Project) {
	setString(&p.Name, d.Name)
	setString(&p.Client, d.Client)
	setString(&p.Title, d.Title)
	setString(&p.Status, d.Status)
	if d.Progress != nil {
		p.Progress = *d.Progress
	}
	setInt(&p.Units, d.Units)
	setInt(&p.ElectricityMeters, d.ElectricityMeters)
	setInt(&p.WaterMeters, d.WaterMeters)
	setInt(&p.BuildingPermits, d.BuildingPermits)
	setInt(&p.OccupancyCertificates, d.OccupancyCertificates)
	setInt(&p.SurveyDecisions, d.SurveyDecisions)
	setString(&p.ConsultantName, d.ConsultantName)
	setString(&p.ConsultantPhone, d.ConsultantPhone)
	setString(&p.ContractorName, d.ContractorName)
	setString(&p.ContractorPhone, d.ContractorPhone)
}

type ProjectDTO struct {
	entities.Project
	DisplayName string             `json:"display_name"`
	Category    dashboard.Category `json:"category"`
	Percent     int                `json:"percent"`
}

// ProjectDetailsDTO - проект вместе со связанными заявками.
type ProjectDetailsDTO struct {
	ProjectDTO
	TechnicalRequests []entities.TechnicalRequest `json:"technical_requests"`
	ClearanceRequests []entities.ClearanceRequest `json:"clearance_requests"`
}

func NewProjectDTO(p entities.Project) ProjectDTO {
	return ProjectDTO{
		Project:     p,
		DisplayName: p.DisplayName(),
		Category:    dashboard.NormalizeStatus(p.Status),
		Percent:     dashboard.RoundHalfUp(p.Progress),
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setNullString(dst *null.String, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = null.String{}
		return
	}
	*dst = null.StringFrom(*src)
}
