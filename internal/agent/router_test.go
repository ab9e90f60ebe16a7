package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

func TestRoutePhase(t *testing.T) {
	cfg := &domain.ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 30}

	tests := []struct {
		name    string
		session *domain.Session
		want    Phase
	}{
		{
			name:    "fresh session",
			session: &domain.Session{UserMessage: "hello"},
			want:    PhaseFirstTurn,
		},
		{
			name:    "proposal outstanding",
			session: &domain.Session{UserMessage: "make it 60 days", ProposedConfig: cfg},
			want:    PhaseNegotiate,
		},
		{
			name:    "confirmed config",
			session: &domain.Session{UserMessage: "run it again", ProposedConfig: cfg, ConfirmedConfig: cfg},
			want:    PhaseForecast,
		},
		{
			name:    "question beats confirmed state",
			session: &domain.Session{UserMessage: "what does the forecast mean?", ProposedConfig: cfg, ConfirmedConfig: cfg},
			want:    PhaseQA,
		},
		{
			name:    "question beats first turn",
			session: &domain.Session{UserMessage: "which columns do you see?"},
			want:    PhaseQA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoutePhase(tt.session))
		})
	}
}

func TestRoutePhase_StableForConfirmedSession(t *testing.T) {
	cfg := &domain.ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 30}
	s := &domain.Session{UserMessage: "go ahead", ProposedConfig: cfg, ConfirmedConfig: cfg}

	first := RoutePhase(s)
	assert.Equal(t, PhaseForecast, first)
	assert.Equal(t, first, RoutePhase(s), "routing must not depend on being asked twice")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "first_turn", PhaseFirstTurn.String())
	assert.Equal(t, "negotiate", PhaseNegotiate.String())
	assert.Equal(t, "forecast", PhaseForecast.String())
	assert.Equal(t, "qa", PhaseQA.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
