package dto

import (
	"time"

	"project-dashboard/internal/dashboard"
)

// DashboardDTO - ответ GET /api/dashboard; кешируется в Redis целиком.
type DashboardDTO struct {
	dashboard.View
	Role        string    `json:"role"`
	Cached      bool      `json:"cached"`
	GeneratedAt time.Time `json:"generated_at"`
}

type DashboardQueryDTO struct {
	ActivityLimit int `query:"activity_limit" validate:"omitempty,min=1,max=50"`
	TopLimit      int `query:"top_limit" validate:"omitempty,min=1,max=50"`
}
