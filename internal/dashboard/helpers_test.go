package dashboard

import (
	"time"

	"github.com/aarondl/null/v8"

	"project-dashboard/internal/entities"
)

var baseTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func tech(id int64, serviceType, status string, created time.Time) entities.TechnicalRequest {
	return entities.TechnicalRequest{ID: id, ServiceType: serviceType, Status: status, CreatedAt: created}
}

func clearance(id int64, project, status string, created time.Time) entities.ClearanceRequest {
	return entities.ClearanceRequest{ID: id, ProjectName: project, Status: status, CreatedAt: created}
}

func updatedAt(t time.Time) null.Time { return null.TimeFrom(t) }
