package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForecastConfigEqual(t *testing.T) {
	base := ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"price"}, Freq: "D", Periods: 30}

	assert.True(t, base.Equal(base))
	assert.True(t, base.Equal(ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"price"}, Freq: "D", Periods: 30}))

	assert.False(t, base.Equal(ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"promo"}, Freq: "D", Periods: 30}))
	assert.False(t, base.Equal(ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"price"}, Freq: "W", Periods: 30}))
	assert.False(t, base.Equal(ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{"price"}, Freq: "D", Periods: 60}))

	// nil and empty regressor lists compare equal.
	a := ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 30}
	b := ForecastConfig{DsCol: "date", YCol: "sales", Regressors: []string{}, Freq: "D", Periods: 30}
	assert.True(t, a.Equal(b))
}

func TestSessionTurnLifecycle(t *testing.T) {
	s := NewSession("ds-1", 0)
	assert.Equal(t, 2, s.MaxAttempts, "non-positive budget falls back to the default")

	s.ExecOutput = &ForecastResult{TrainingRows: 10}
	s.ExecError = "old"
	s.Attempt = 2

	s.BeginTurn("what happened?", true)
	assert.Equal(t, "what happened?", s.UserMessage)
	assert.True(t, s.ShowCode)
	assert.NotNil(t, s.ExecOutput, "a new turn keeps the last result for QA")

	s.ResetExecution()
	assert.Nil(t, s.ExecOutput)
	assert.Empty(t, s.ExecError)
	assert.Zero(t, s.Attempt)
}
