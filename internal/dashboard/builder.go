package dashboard

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/cespare/xxhash/v2"

	"project-dashboard/internal/entities"
)

// Input - всё, что нужно для одного построения дашборда.
type Input struct {
	Projects      []entities.Project
	Tech          []entities.TechnicalRequest
	Clearance     []entities.ClearanceRequest
	Users         []entities.User
	ActivityLimit int
	TopLimit      int
}

// View - готовая к отрисовке модель дашборда.
type View struct {
	KPIs         KPIs              `json:"kpis"`
	Distribution Distribution      `json:"distribution"`
	Activity     []ActivityItem    `json:"activity"`
	TopProjects  []ProjectProgress `json:"top_projects"`
	Linkage      LinkSummary       `json:"linkage"`
}

func Build(in Input) View {
	return View{
		KPIs:         ComputeKPIs(in.Projects, in.Tech, in.Clearance, in.Users),
		Distribution: AnalyzeDistribution(in.Tech),
		Activity:     MergeActivity(in.Tech, in.Clearance, in.ActivityLimit),
		TopProjects:  TopProjects(in.Projects, in.TopLimit),
		Linkage:      LinkRequests(in.Projects, in.Tech, in.Clearance).Summary(),
	}
}

// Fingerprint - хэш всех полей, влияющих на View. Одинаковый вход -> одинаковый ключ.
func Fingerprint(in Input) uint64 {
	h := fingerprinter{d: xxhash.New()}

	h.int(int64(in.ActivityLimit))
	h.int(int64(in.TopLimit))

	h.int(int64(len(in.Projects)))
	for _, p := range in.Projects {
		h.int(p.ID)
		h.str(p.Name)
		h.str(p.Title)
		h.str(p.Client)
		h.str(p.Status)
		h.float(p.Progress)
		h.bool(p.IsPinned)
	}

	h.int(int64(len(in.Tech)))
	for _, r := range in.Tech {
		h.int(r.ID)
		h.int(r.ProjectID.Int64)
		h.bool(r.ProjectID.Valid)
		h.str(r.ProjectName)
		h.str(r.ServiceType)
		h.str(r.Status)
		h.str(r.AssignedTo.String)
		h.time(r.CreatedAt)
		h.nullTime(r.UpdatedAt)
	}

	h.int(int64(len(in.Clearance)))
	for _, r := range in.Clearance {
		h.int(r.ID)
		h.str(r.ProjectName)
		h.str(r.Status)
		h.str(r.AssignedTo.String)
		h.time(r.CreatedAt)
		h.nullTime(r.UpdatedAt)
	}

	// для команды важно только количество
	h.int(int64(len(in.Users)))
	return h.d.Sum64()
}

type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (f *fingerprinter) int(v int64) {
	binary.LittleEndian.PutUint64(f.buf[:], uint64(v))
	_, _ = f.d.Write(f.buf[:])
}

func (f *fingerprinter) float(v float64) { f.int(int64(math.Float64bits(v))) }

// time учитывает и зону: в JSON View время уходит со смещением.
func (f *fingerprinter) time(t time.Time) {
	name, offset := t.Zone()
	f.int(t.UnixNano())
	f.int(int64(offset))
	f.str(name)
}

// nullTime различает NULL и заданное значение: View отдаёт updated_at как null или время.
func (f *fingerprinter) nullTime(t null.Time) {
	f.bool(t.Valid)
	if t.Valid {
		f.time(t.Time)
	}
}

func (f *fingerprinter) bool(b bool) {
	if b {
		f.int(1)
	} else {
		f.int(0)
	}
}

func (f *fingerprinter) str(s string) {
	f.int(int64(len(s)))
	_, _ = f.d.WriteString(s)
}

// Memo хранит последнее построенное представление по отпечатку входа.
// Безопасен для конкурентного использования.
type Memo struct {
	mu   sync.Mutex
	key  uint64
	view View
	ok   bool
}

// Get возвращает View для входа, пересчитывая только при смене отпечатка.
// Второе значение - true, если результат взят из памяти.
func (m *Memo) Get(in Input) (View, bool) {
	key := Fingerprint(in)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ok && m.key == key {
		return m.view, true
	}
	m.view = Build(in)
	m.key = key
	m.ok = true
	return m.view, false
}
