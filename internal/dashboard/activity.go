package dashboard

import (
	"sort"
	"time"

	"github.com/aarondl/null/v8"

	"project-dashboard/internal/entities"
	"project-dashboard/pkg/constants"
)

type ActivityKind string

const (
	ActivityTechnical ActivityKind = "technical"
	ActivityClearance ActivityKind = "clearance"
)

// ActivityItem - запись единой ленты последних действий.
type ActivityItem struct {
	ID          int64        `json:"id"`
	Kind        ActivityKind `json:"kind"`
	Label       string       `json:"label"`
	ProjectName string       `json:"project_name"`
	Status      string       `json:"status"`
	Category    Category     `json:"category"`
	Assignee    string       `json:"assignee,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
	EffectiveAt time.Time    `json:"effective_at"`
}

// EffectiveTime - время обновления, если есть, иначе время создания.
func EffectiveTime(created time.Time, updated null.Time) time.Time {
	if updated.Valid && !updated.Time.IsZero() {
		return updated.Time
	}
	return created
}

// MergeActivity объединяет заявки в одну ленту по убыванию EffectiveTime.
// limit <= 0 означает значение по умолчанию.
func MergeActivity(tech []entities.TechnicalRequest, clearance []entities.ClearanceRequest, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(tech)+len(clearance))
	for _, r := range tech {
		items = append(items, ActivityItem{
			ID:          r.ID,
			Kind:        ActivityTechnical,
			Label:       r.ServiceType,
			ProjectName: r.ProjectName,
			Status:      r.Status,
			Category:    NormalizeStatus(r.Status),
			Assignee:    r.AssignedTo.String,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt.Ptr(),
			EffectiveAt: EffectiveTime(r.CreatedAt, r.UpdatedAt),
		})
	}
	for _, r := range clearance {
		items = append(items, ActivityItem{
			ID:          r.ID,
			Kind:        ActivityClearance,
			Label:       constants.ClearanceActivityLabel,
			ProjectName: r.ProjectName,
			Status:      r.Status,
			Category:    NormalizeStatus(r.Status),
			Assignee:    r.AssignedTo.String,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt.Ptr(),
			EffectiveAt: EffectiveTime(r.CreatedAt, r.UpdatedAt),
		})
	}
	return SortActivity(items, limit)
}

// SortActivity - устойчивая сортировка по убыванию EffectiveAt и обрезка до limit.
// Сортирует переданный срез на месте.
func SortActivity(items []ActivityItem, limit int) []ActivityItem {
	if limit <= 0 {
		limit = constants.DefaultActivityLimit
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EffectiveAt.After(items[j].EffectiveAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
