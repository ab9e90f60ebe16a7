// Package profile derives descriptive summaries from tabular frames:
// per-column types, missing ratios, cardinality, and sample values.
// Summaries are what the orchestrator shows to the advisor and the user;
// the raw frame never leaves the dataset store.
package profile

import (
	"strconv"
	"strings"
	"time"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

const (
	headRows     = 5
	sampleValues = 3
)

// dateLayouts are the formats recognized when inferring a datetime column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// BuildPreview produces the preview payload for a frame: the first few
// rows, a per-column profile, and the column name list.
func BuildPreview(f *domain.Frame) *domain.Preview {
	n := f.NumRows()
	if n > headRows {
		n = headRows
	}

	head := make([]map[string]string, 0, n)
	for _, row := range f.Rows[:n] {
		rec := make(map[string]string, len(f.Columns))
		for i, col := range f.Columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		head = append(head, rec)
	}

	return &domain.Preview{
		Head:    head,
		Profile: profileFrame(f),
		Columns: append([]string(nil), f.Columns...),
	}
}

func profileFrame(f *domain.Frame) domain.Profile {
	out := domain.Profile{
		NumRows: f.NumRows(),
		NumCols: len(f.Columns),
		Columns: make(map[string]domain.ColumnProfile, len(f.Columns)),
	}

	denom := f.NumRows()
	if denom < 1 {
		denom = 1
	}

	for _, col := range f.Columns {
		vals := f.ColumnValues(col)
		missing := 0
		seen := make(map[string]struct{})
		var samples []string

		for _, v := range vals {
			if isMissing(v) {
				missing++
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if len(samples) < sampleValues {
					samples = append(samples, v)
				}
			}
		}

		out.Columns[col] = domain.ColumnProfile{
			Dtype:        InferDtype(vals),
			MissingCount: missing,
			MissingPct:   round2(float64(missing) / float64(denom) * 100.0),
			UniqueCount:  len(seen),
			SampleValues: samples,
		}
	}
	return out
}

// InferDtype classifies a column as "int", "float", "datetime", or
// "string" from its non-missing values. A column with no values at all
// is "string".
func InferDtype(vals []string) string {
	allInt := true
	allFloat := true
	allDate := true
	seenAny := false

	for _, v := range vals {
		if isMissing(v) {
			continue
		}
		seenAny = true
		v = strings.TrimSpace(v)

		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				allFloat = false
			}
		}
		if allDate {
			if !parseableDate(v) {
				allDate = false
			}
		}
		if !allInt && !allFloat && !allDate {
			return "string"
		}
	}

	switch {
	case !seenAny:
		return "string"
	case allInt:
		return "int"
	case allFloat:
		return "float"
	case allDate:
		return "datetime"
	default:
		return "string"
	}
}

func parseableDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func isMissing(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "na", "n/a", "nan", "null", "none":
		return true
	default:
		return false
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
