// Package runner is the execution boundary: it runs generated forecasting
// code against a dataset and a confirmed configuration, returning either a
// structured result or a typed failure. The orchestrator stays agnostic to
// what the generated code does internally.
package runner

import (
	"context"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// Failure is a recoverable execution failure: a short human-readable
// message plus the full diagnostic detail (typically a traceback) that
// the repair step feeds back to the advisor.
type Failure struct {
	Message string
	Detail  string
}

func (f *Failure) Error() string {
	return f.Message
}

// Runner executes generated code against a frame and a configuration.
type Runner interface {
	Run(ctx context.Context, code string, frame *domain.Frame, cfg domain.ForecastConfig) (*domain.ForecastResult, error)
}
