package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		label string
		want  Category
	}{
		{"completed", CategoryCompleted},
		{"  COMPLETED ", CategoryCompleted},
		{"Done", CategoryCompleted},
		{"مكتمل", CategoryCompleted},
		{"rejected", CategoryRejected},
		{"مرفوض", CategoryRejected},
		{"in_review", CategoryInReview},
		{"In-Review", CategoryInReview},
		{"قيد المراجعة", CategoryInReview},
		{"pending approval", CategoryInReview},
		{"", CategoryUnknown},
		{"new", CategoryUnknown},
		{"جديد", CategoryUnknown},
		// вхождение только по целым словам
		{"incomplete", CategoryUnknown},
		// "تم" засчитывается только целой меткой
		{"تم", CategoryCompleted},
		{"تم الإنجاز", CategoryCompleted},
		{"تم الإلغاء", CategoryRejected},
		{"تم الرفض", CategoryRejected},
		{"تم التسليم", CategoryUnknown},
		{"ملغى", CategoryRejected},
		// отрицания не дают completed
		{"غير مكتمل", CategoryUnknown},
		{"لم يكتمل", CategoryUnknown},
		{"not completed", CategoryUnknown},
		{"Not Approved", CategoryUnknown},
		{"un-approved", CategoryUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeStatus(tc.label))
		})
	}
}

func TestCategory_TextAndTerminal(t *testing.T) {
	text, err := CategoryInReview.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "in_review", string(text))
	assert.Equal(t, "unknown", Category(42).String())

	assert.True(t, CategoryCompleted.Terminal())
	assert.True(t, CategoryRejected.Terminal())
	assert.False(t, CategoryInReview.Terminal())
	assert.False(t, CategoryUnknown.Terminal())
}

func TestCategory_UnmarshalText(t *testing.T) {
	for _, c := range []Category{CategoryUnknown, CategoryCompleted, CategoryRejected, CategoryInReview} {
		text, _ := c.MarshalText()
		var got Category
		assert.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, c, got)
	}

	got := CategoryCompleted
	assert.NoError(t, got.UnmarshalText([]byte("whatever")))
	assert.Equal(t, CategoryUnknown, got)
}
