package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

func testFrame() *domain.Frame {
	return &domain.Frame{
		Columns: []string{"date", "sales", "price", "region"},
		Rows: [][]string{
			{"2024-01-01", "100", "9.99", "north"},
			{"2024-01-02", "120", "9.99", "south"},
			{"2024-01-03", "NA", "10.49", "north"},
			{"2024-01-04", "140", "", "east"},
			{"2024-01-05", "150", "10.99", "south"},
			{"2024-01-06", "135", "10.99", "west"},
		},
	}
}

func TestBuildPreview_HeadAndColumns(t *testing.T) {
	p := BuildPreview(testFrame())

	require.Len(t, p.Head, 5)
	assert.Equal(t, "2024-01-01", p.Head[0]["date"])
	assert.Equal(t, "north", p.Head[0]["region"])
	assert.Equal(t, []string{"date", "sales", "price", "region"}, p.Columns)
}

func TestBuildPreview_ShortFrame(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"date", "sales"},
		Rows:    [][]string{{"2024-01-01", "100"}},
	}
	p := BuildPreview(f)

	assert.Len(t, p.Head, 1)
	assert.Equal(t, 1, p.Profile.NumRows)
	assert.Equal(t, 2, p.Profile.NumCols)
}

func TestBuildPreview_RaggedRow(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]string{{"1", "2"}},
	}
	p := BuildPreview(f)

	require.Len(t, p.Head, 1)
	assert.Equal(t, "", p.Head[0]["c"])
}

func TestProfile_MissingAndUnique(t *testing.T) {
	p := BuildPreview(testFrame())

	sales := p.Profile.Columns["sales"]
	assert.Equal(t, 1, sales.MissingCount)
	assert.InDelta(t, 16.67, sales.MissingPct, 0.01)
	assert.Equal(t, 5, sales.UniqueCount)

	price := p.Profile.Columns["price"]
	assert.Equal(t, 1, price.MissingCount)
	assert.Equal(t, 3, price.UniqueCount)

	region := p.Profile.Columns["region"]
	assert.Equal(t, 0, region.MissingCount)
	assert.Len(t, region.SampleValues, 3)
	assert.Equal(t, []string{"north", "south", "east"}, region.SampleValues)
}

func TestInferDtype(t *testing.T) {
	tests := []struct {
		name string
		vals []string
		want string
	}{
		{"ints", []string{"1", "2", "300"}, "int"},
		{"floats", []string{"1.5", "2", "3.25"}, "float"},
		{"iso dates", []string{"2024-01-01", "2024-02-15"}, "datetime"},
		{"slash dates", []string{"2024/01/01", "2024/02/15"}, "datetime"},
		{"timestamps", []string{"2024-01-01 10:30:00"}, "datetime"},
		{"strings", []string{"north", "south"}, "string"},
		{"mixed", []string{"1", "north"}, "string"},
		{"ints with missing", []string{"1", "NA", "3"}, "int"},
		{"all missing", []string{"", "NA", "null"}, "string"},
		{"empty", nil, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDtype(tt.vals))
		})
	}
}
