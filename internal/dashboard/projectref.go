package dashboard

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"project-dashboard/internal/entities"
)

type refKind uint8

const (
	refNone refKind = iota
	refByID
	refByName
)

// ProjectRef - ссылка заявки на проект: по id или по денормализованному имени.
type ProjectRef struct {
	kind refKind
	id   int64
	name string
}

func RefByID(id int64) ProjectRef { return ProjectRef{kind: refByID, id: id} }

func RefByName(name string) ProjectRef {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProjectRef{}
	}
	return ProjectRef{kind: refByName, name: name}
}

// ResolveRef: id, если задан, иначе имя.
func ResolveRef(id null.Int64, name string) ProjectRef {
	if id.Valid && id.Int64 > 0 {
		return RefByID(id.Int64)
	}
	return RefByName(name)
}

func (r ProjectRef) ID() (int64, bool) { return r.id, r.kind == refByID }
func (r ProjectRef) Name() (string, bool) { return r.name, r.kind == refByName }
func (r ProjectRef) Valid() bool { return r.kind != refNone }

func (r ProjectRef) String() string {
	switch r.kind {
	case refByID:
		return "id:" + strconv.FormatInt(r.id, 10)
	case refByName:
		return "name:" + r.name
	default:
		return "none"
	}
}

// RequestRef - заявка, которую не удалось однозначно привязать.
type RequestRef struct {
	Kind      ActivityKind `json:"kind"`
	RequestID int64        `json:"request_id"`
	Ref       string       `json:"ref"`
}

// ProjectRequests - заявки одного проекта.
type ProjectRequests struct {
	Technical []entities.TechnicalRequest `json:"technical"`
	Clearance []entities.ClearanceRequest `json:"clearance"`
}

type Links struct {
	ByProject map[int64]*ProjectRequests
	Unmatched []RequestRef
	Ambiguous []RequestRef
}

// LinkSummary - счётчики привязки для представления.
type LinkSummary struct {
	Linked    int          `json:"linked"`
	Unmatched int          `json:"unmatched"`
	Ambiguous int          `json:"ambiguous"`
	Problems  []RequestRef `json:"problems,omitempty"`
}

// LinkRequests разрешает ссылку каждой заявки один раз.
// Имя сравнивается без учёта регистра с DisplayName проекта; совпадение
// с несколькими проектами считается неоднозначным и не привязывается.
func LinkRequests(projects []entities.Project, tech []entities.TechnicalRequest, clearance []entities.ClearanceRequest) Links {
	byID := make(map[int64]struct{}, len(projects))
	byName := make(map[string][]int64, len(projects))
	for _, p := range projects {
		byID[p.ID] = struct{}{}
		if key := normalizeLabel(p.DisplayName()); key != "" {
			byName[key] = append(byName[key], p.ID)
		}
	}

	links := Links{ByProject: make(map[int64]*ProjectRequests)}
	bucket := func(id int64) *ProjectRequests {
		pr, ok := links.ByProject[id]
		if !ok {
			pr = &ProjectRequests{}
			links.ByProject[id] = pr
		}
		return pr
	}

	resolve := func(ref ProjectRef, kind ActivityKind, requestID int64) (int64, bool) {
		problem := RequestRef{Kind: kind, RequestID: requestID, Ref: ref.String()}
		if id, ok := ref.ID(); ok {
			if _, exists := byID[id]; exists {
				return id, true
			}
			links.Unmatched = append(links.Unmatched, problem)
			return 0, false
		}
		if name, ok := ref.Name(); ok {
			ids := byName[normalizeLabel(name)]
			switch len(ids) {
			case 1:
				return ids[0], true
			case 0:
				links.Unmatched = append(links.Unmatched, problem)
			default:
				links.Ambiguous = append(links.Ambiguous, problem)
			}
			return 0, false
		}
		links.Unmatched = append(links.Unmatched, problem)
		return 0, false
	}

	for _, r := range tech {
		if id, ok := resolve(ResolveRef(r.ProjectID, r.ProjectName), ActivityTechnical, r.ID); ok {
			pr := bucket(id)
			pr.Technical = append(pr.Technical, r)
		}
	}
	for _, r := range clearance {
		if id, ok := resolve(RefByName(r.ProjectName), ActivityClearance, r.ID); ok {
			pr := bucket(id)
			pr.Clearance = append(pr.Clearance, r)
		}
	}
	return links
}

func (l Links) Summary() LinkSummary {
	linked := 0
	for _, pr := range l.ByProject {
		linked += len(pr.Technical) + len(pr.Clearance)
	}
	problems := make([]RequestRef, 0, len(l.Unmatched)+len(l.Ambiguous))
	problems = append(problems, l.Ambiguous...)
	problems = append(problems, l.Unmatched...)
	return LinkSummary{
		Linked:    linked,
		Unmatched: len(l.Unmatched),
		Ambiguous: len(l.Ambiguous),
		Problems:  problems,
	}
}

// For возвращает заявки проекта (пустые, если их нет).
func (l Links) For(projectID int64) ProjectRequests {
	if pr, ok := l.ByProject[projectID]; ok {
		return *pr
	}
	return ProjectRequests{}
}
