package dto

import "project-dashboard/internal/dashboard"

// ReportQueryDTO - параметры отчёта по проектам.
type ReportQueryDTO struct {
	Format string `query:"format" validate:"omitempty,oneof=json xlsx"`
}

// ProjectReportRowDTO - строка сводного отчёта по проекту.
type ProjectReportRowDTO struct {
	ProjectID         int64              `json:"project_id"`
	Name              string             `json:"name"`
	Client            string             `json:"client"`
	Status            string             `json:"status"`
	Category          dashboard.Category `json:"category"`
	Percent           int                `json:"percent"`
	Units             int                `json:"units"`
	ElectricityMeters int                `json:"electricity_meters"`
	WaterMeters       int                `json:"water_meters"`
	TechnicalTotal    int                `json:"technical_total"`
	TechnicalOpen     int                `json:"technical_open"`
	// nil для ролей без доступа к переоформлению собственности
	ClearanceTotal *int `json:"clearance_total,omitempty"`
	Pinned         bool `json:"pinned"`
}
