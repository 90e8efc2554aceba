package dashboard

import "project-dashboard/internal/entities"

// KPIs - четыре заголовочные метрики дашборда.
type KPIs struct {
	ActiveProjects int `json:"active_projects"`
	PendingTech    int `json:"pending_tech"`
	TotalClearance int `json:"total_clearance"`
	TeamCount      int `json:"team_count"`
}

// IsProjectActive: статус и прогресс независимы, активен при любом из признаков.
func IsProjectActive(p entities.Project) bool {
	return !NormalizeStatus(p.Status).Terminal() || p.Progress < 100
}

func ComputeKPIs(
	projects []entities.Project,
	tech []entities.TechnicalRequest,
	clearance []entities.ClearanceRequest,
	users []entities.User,
) KPIs {
	k := KPIs{
		TotalClearance: len(clearance),
		TeamCount:      len(users),
	}
	for _, p := range projects {
		if IsProjectActive(p) {
			k.ActiveProjects++
		}
	}
	for _, r := range tech {
		if NormalizeStatus(r.Status) != CategoryCompleted {
			k.PendingTech++
		}
	}
	return k
}
