package dashboard

import (
	"sort"
	"strings"

	"project-dashboard/internal/entities"
	"project-dashboard/pkg/constants"
)

// Bucket - группа технических заявок одного типа услуги.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Share int    `json:"share"` // проценты от Total
	Color string `json:"color"`
}

// Span - сектор кольцевой диаграммы, в процентах и градусах.
type Span struct {
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	StartPct float64 `json:"start_pct"`
	EndPct   float64 `json:"end_pct"`
	StartDeg float64 `json:"start_deg"`
	EndDeg   float64 `json:"end_deg"`
}

type Distribution struct {
	Buckets []Bucket `json:"buckets"`
	// Total считается по всем группам, не только по топ-4.
	Total int    `json:"total"`
	Spans []Span `json:"spans"`
}

// AnalyzeDistribution группирует заявки по типу услуги и оставляет топ-4.
// Доли считаются методом наибольшего остатка по всем группам, поэтому
// сумма долей всех групп ровно 100, а показанных - не больше 100.
func AnalyzeDistribution(tech []entities.TechnicalRequest) Distribution {
	var (
		order  []string
		counts = make(map[string]int)
	)
	for _, r := range tech {
		label := strings.TrimSpace(r.ServiceType)
		if label == "" {
			label = constants.ServiceTypeOther
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	if len(order) == 0 {
		return Distribution{
			Buckets: []Bucket{},
			Total:   0,
			Spans: []Span{{
				Color:  constants.DistributionNeutralColor,
				EndPct: 100,
				EndDeg: 360,
			}},
		}
	}

	buckets := make([]Bucket, len(order))
	total := 0
	for i, label := range order {
		buckets[i] = Bucket{Label: label, Count: counts[label]}
		total += counts[label]
	}
	// при равенстве сохраняется порядок первого появления
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })

	assignShares(buckets, total)

	if len(buckets) > constants.DistributionMaxBuckets {
		buckets = buckets[:constants.DistributionMaxBuckets]
	}

	spans := make([]Span, len(buckets))
	var offset float64
	for i := range buckets {
		buckets[i].Color = constants.DistributionPalette[i]
		end := offset + float64(buckets[i].Share)
		spans[i] = Span{
			Label:    buckets[i].Label,
			Color:    buckets[i].Color,
			StartPct: offset,
			EndPct:   end,
			StartDeg: offset * 3.6,
			EndDeg:   end * 3.6,
		}
		offset = end
	}

	return Distribution{Buckets: buckets, Total: total, Spans: spans}
}

// assignShares - метод наибольшего остатка; buckets уже отсортированы по рангу.
func assignShares(buckets []Bucket, total int) {
	if total <= 0 {
		return
	}
	remainders := make([]int, len(buckets))
	assigned := 0
	for i := range buckets {
		scaled := buckets[i].Count * 100
		buckets[i].Share = scaled / total
		remainders[i] = scaled % total
		assigned += buckets[i].Share
	}

	idx := make([]int, len(buckets))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return remainders[idx[a]] > remainders[idx[b]] })

	for k := 0; assigned < 100 && k < len(idx); k++ {
		if remainders[idx[k]] == 0 {
			break
		}
		buckets[idx[k]].Share++
		assigned++
	}
}
