package dashboard

import (
	"strings"

	"golang.org/x/text/cases"

	"project-dashboard/pkg/constants"
)

// Category - канонический статус, к которому сводится свободная (двуязычная) метка.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCompleted
	CategoryRejected
	CategoryInReview
)

func (c Category) String() string {
	switch c {
	case CategoryCompleted:
		return "completed"
	case CategoryRejected:
		return "rejected"
	case CategoryInReview:
		return "in_review"
	default:
		return "unknown"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - обратное MarshalText; незнакомое значение даёт CategoryUnknown.
func (c *Category) UnmarshalText(b []byte) error {
	switch string(b) {
	case "completed":
		*c = CategoryCompleted
	case "rejected":
		*c = CategoryRejected
	case "in_review":
		*c = CategoryInReview
	default:
		*c = CategoryUnknown
	}
	return nil
}

// Terminal - работа по записи закончена (выполнена или отклонена).
func (c Category) Terminal() bool {
	return c == CategoryCompleted || c == CategoryRejected
}

type synonym struct {
	key      string
	category Category
}

var (
	// порядок важен для поиска по вхождению: rejected раньше completed
	statusSynonyms []synonym
	statusExact    map[string]Category
	negationWords  map[string]bool
)

func init() {
	groups := []struct {
		words    []string
		category Category
	}{
		{constants.RejectedStatusSynonyms, CategoryRejected},
		{constants.CompletedStatusSynonyms, CategoryCompleted},
		{constants.InReviewStatusSynonyms, CategoryInReview},
	}
	exactOnly := make(map[string]bool)
	for _, w := range constants.ExactOnlyStatusSynonyms {
		exactOnly[normalizeLabel(w)] = true
	}
	negationWords = make(map[string]bool)
	for _, w := range constants.NegationStatusWords {
		negationWords[normalizeLabel(w)] = true
	}

	statusExact = make(map[string]Category)
	for _, g := range groups {
		for _, w := range g.words {
			key := normalizeLabel(w)
			if _, dup := statusExact[key]; dup {
				continue
			}
			statusExact[key] = g.category
			if !exactOnly[key] {
				statusSynonyms = append(statusSynonyms, synonym{key: key, category: g.category})
			}
		}
	}
}

var labelReplacer = strings.NewReplacer("_", " ", "-", " ")

func normalizeLabel(label string) string {
	folded := cases.Fold().String(labelReplacer.Replace(label))
	return strings.Join(strings.Fields(folded), " ")
}

// NormalizeStatus сводит метку к Category. Никогда не паникует;
// неизвестная или пустая метка -> CategoryUnknown.
func NormalizeStatus(label string) Category {
	key := normalizeLabel(label)
	if key == "" {
		return CategoryUnknown
	}
	if c, ok := statusExact[key]; ok {
		return c
	}
	// отрицание делает метку неизвестной: "غير مكتمل", "not approved"
	for _, word := range strings.Fields(key) {
		if negationWords[word] {
			return CategoryUnknown
		}
	}
	// вхождение по границе слов: "pending review" -> in_review, но "incomplete" не completed
	padded := " " + key + " "
	for _, s := range statusSynonyms {
		if strings.Contains(padded, " "+s.key+" ") {
			return s.category
		}
	}
	return CategoryUnknown
}
