package dashboard

import (
	"math"

	"project-dashboard/internal/entities"
	"project-dashboard/pkg/constants"
)

// ProjectProgress - строка столбчатой диаграммы прогресса.
type ProjectProgress struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Percent int    `json:"percent"` // округление half-up
	Display int    `json:"display"` // Percent, зажатый в 0..100 для ширины полосы
	Pinned  bool   `json:"pinned"`
}

// TopProjects берёт первые limit проектов В ПОРЯДКЕ ВХОДА (закреплённые уже
// подняты наверх при выборке), без сортировки по прогрессу.
func TopProjects(projects []entities.Project, limit int) []ProjectProgress {
	if limit <= 0 {
		limit = constants.DefaultTopProjects
	}
	n := min(limit, len(projects))
	out := make([]ProjectProgress, 0, n)
	for _, p := range projects[:n] {
		percent := RoundHalfUp(p.Progress)
		name := p.DisplayName()
		if name == "" {
			name = constants.UnspecifiedLabel
		}
		out = append(out, ProjectProgress{
			ID:      p.ID,
			Name:    name,
			Status:  p.Status,
			Percent: percent,
			Display: max(0, min(100, percent)),
			Pinned:  p.IsPinned,
		})
	}
	return out
}

// RoundHalfUp: 12.5 -> 13, -0.5 -> 0. NaN считается нулём.
func RoundHalfUp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
