package entities

import (
	"strings"
	"time"

	"github.com/aarondl/null/v8"
)

type Project struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Client   string `json:"client" db:"client"`
	Title    string `json:"title" db:"title"`
	Status   string `json:"status" db:"status"`
	// 0..100, но из-за ручного ввода встречаются значения вне диапазона
	Progress float64 `json:"progress" db:"progress"`

	Units                 int `json:"units" db:"units"`
	ElectricityMeters     int `json:"electricity_meters" db:"electricity_meters"`
	WaterMeters           int `json:"water_meters" db:"water_meters"`
	BuildingPermits       int `json:"building_permits" db:"building_permits"`
	OccupancyCertificates int `json:"occupancy_certificates" db:"occupancy_certificates"`
	SurveyDecisions       int `json:"survey_decisions" db:"survey_decisions"`

	ConsultantName  string `json:"consultant_name" db:"consultant_name"`
	ConsultantPhone string `json:"consultant_phone" db:"consultant_phone"`
	ContractorName  string `json:"contractor_name" db:"contractor_name"`
	ContractorPhone string `json:"contractor_phone" db:"contractor_phone"`

	IsPinned  bool      `json:"is_pinned" db:"is_pinned"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt null.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName - name, title и client взаимозаменяемы; берём первое непустое.
func (p Project) DisplayName() string {
	for _, s := range []string{p.Name, p.Title, p.Client} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
