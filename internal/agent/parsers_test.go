package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

func TestParseHorizon(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		baseFreq string
		want     HorizonUpdate
		ok       bool
	}{
		{"days", "forecast 45 days", "D", HorizonUpdate{Freq: "D", Periods: 45}, true},
		{"days abbreviated", "next 10d", "D", HorizonUpdate{Freq: "D", Periods: 10}, true},
		{"weeks", "8 weeks", "D", HorizonUpdate{Freq: "W", Periods: 8}, true},
		{"weeks abbreviated", "6 wks please", "M", HorizonUpdate{Freq: "W", Periods: 6}, true},
		{"months with preamble", "forecast next 2 months", "D", HorizonUpdate{Freq: "M", Periods: 2}, true},
		{"months abbreviated", "3 mo", "D", HorizonUpdate{Freq: "M", Periods: 3}, true},
		{"years become months", "2 years", "D", HorizonUpdate{Freq: "M", Periods: 24}, true},
		{"quarters on daily base", "1 quarter", "D", HorizonUpdate{Freq: "D", Periods: 90}, true},
		{"quarters on weekly base", "2 quarters", "W", HorizonUpdate{Freq: "W", Periods: 26}, true},
		{"quarters on monthly base", "1 quarter", "M", HorizonUpdate{Freq: "M", Periods: 3}, true},
		{"quarters on unknown base fall back to daily", "1 quarter", "", HorizonUpdate{Freq: "D", Periods: 90}, true},
		{"no horizon", "change the target column", "D", HorizonUpdate{}, false},
		{"number without unit", "make it 50", "D", HorizonUpdate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHorizon(tt.message, tt.baseFreq)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

var testColumns = []string{"date", "sales", "price", "promo", "region"}

func TestParseRegressorReplace(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		want      []string
		triggered bool
	}{
		{"is form", "my regressor is price", []string{"price"}, true},
		{"are form with two columns", "regressors are price and promo", []string{"price", "promo"}, true},
		{"inverted form", "price and promo are my regressors", []string{"price", "promo"}, true},
		{"use-as form", "use promo as my regressor", []string{"promo"}, true},
		{"order follows mention position", "regressors are promo and price", []string{"promo", "price"}, true},
		{"ds and y excluded", "regressors are date and sales and price", []string{"price"}, true},
		{"trigger with unknown column", "my regressor is temperature", nil, true},
		{"no trigger", "change the horizon to 60 days", nil, false},
		{"substring does not match", "regressors are priceless", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, triggered := ParseRegressorReplace(tt.message, testColumns, "date", "sales")
			assert.Equal(t, tt.triggered, triggered)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseRegressorAdd(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{"add form", "add promo regressor", "promo", true},
		{"add as-a form", "add price as a regressor", "price", true},
		{"add without known column", "add seasonality regressor", "", false},
		{"add without regressor keyword", "add promo", "", false},
		{"no add keyword", "promo regressor", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRegressorAdd(tt.message, testColumns, "date", "sales")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchColumns_CaseInsensitiveWordBoundary(t *testing.T) {
	got := matchColumns("use PRICE and Promo here", testColumns, "date", "sales")
	assert.Equal(t, []string{"price", "promo"}, got)

	got = matchColumns("priced into promotion", testColumns, "date", "sales")
	assert.Empty(t, got, "substrings inside larger words must not match")
}

func TestHorizonAndFreqConstants(t *testing.T) {
	assert.True(t, domain.IsValidFreq("D"))
	assert.True(t, domain.IsValidFreq("W"))
	assert.True(t, domain.IsValidFreq("M"))
	assert.False(t, domain.IsValidFreq("Q"))
	assert.False(t, domain.IsValidFreq("d"))
}
