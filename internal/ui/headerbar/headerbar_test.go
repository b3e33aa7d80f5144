package headerbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/picsearch/internal/ui/testutil"
)

func TestStatus_Text(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"idle", Status{}, ""},
		{"loading first page", Status{Query: "dog", Loading: true}, "searching…"},
		{"loading", Status{Query: "dog", Loading: true, Page: 3, TotalPages: 12}, "searching… page 3/12"},
		{"none", Status{Query: "dog"}, "no results"},
		{"one", Status{Query: "dog", Results: 1}, "1 result"},
		{"many", Status{Query: "dog", Results: 55}, "55 results"},
		{"failed", Status{Query: "dog", Results: 20, Failed: true}, "⚠ 20 results (incomplete)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Text())
		})
	}
}

func TestRender(t *testing.T) {
	out := testutil.StripANSI(Render(Status{Query: "dog", Loading: true, Page: 3, TotalPages: 12}, 80))

	assert.Contains(t, out, "picsearch")
	assert.Contains(t, out, "dog")
	assert.Contains(t, out, "searching… page 3/12")
	assert.Contains(t, out, "? help")
	assert.Equal(t, 80, testutil.MeasureWidth(out))
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render(Status{Query: "dog"}, 10))
}
