package domain

import "slices"

// Frequency values accepted by a forecast configuration.
const (
	FreqDaily   = "D"
	FreqWeekly  = "W"
	FreqMonthly = "M"
)

// DefaultPeriods is the forecast horizon used when none is specified.
const DefaultPeriods = 30

// ForecastConfig describes one forecast run: which column is the time
// axis (ds), which is the target (y), auxiliary regressor columns, and
// the horizon as frequency plus period count.
//
// Empty DsCol or YCol means "not yet determined". Any config stored on a
// session has passed through the normalizer, so Freq is one of D/W/M,
// Periods is positive, and Regressors is deduplicated with no entry equal
// to DsCol or YCol.
type ForecastConfig struct {
	DsCol      string   `json:"ds_col"`
	YCol       string   `json:"y_col"`
	Regressors []string `json:"regressors"`
	Freq       string   `json:"freq"`
	Periods    int      `json:"periods"`
}

// Equal reports whether two configurations are identical field for field.
func (c ForecastConfig) Equal(other ForecastConfig) bool {
	return c.DsCol == other.DsCol &&
		c.YCol == other.YCol &&
		c.Freq == other.Freq &&
		c.Periods == other.Periods &&
		slices.Equal(c.Regressors, other.Regressors)
}

// IsValidFreq reports whether f is one of the accepted frequency codes.
func IsValidFreq(f string) bool {
	return f == FreqDaily || f == FreqWeekly || f == FreqMonthly
}
