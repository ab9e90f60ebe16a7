package agent

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// NormalizeConfig canonicalizes a configuration: trims ds/y, uppercases
// and constrains freq to D/W/M (falling back to D), forces periods
// positive (falling back to the default horizon), and deduplicates
// regressors while dropping blanks and any entry equal to ds or y.
// Normalization is idempotent.
func NormalizeConfig(cfg domain.ForecastConfig) domain.ForecastConfig {
	out := domain.ForecastConfig{
		DsCol:   strings.TrimSpace(cfg.DsCol),
		YCol:    strings.TrimSpace(cfg.YCol),
		Freq:    strings.ToUpper(strings.TrimSpace(cfg.Freq)),
		Periods: cfg.Periods,
	}

	if !domain.IsValidFreq(out.Freq) {
		out.Freq = domain.FreqDaily
	}
	if out.Periods <= 0 {
		out.Periods = domain.DefaultPeriods
	}

	seen := make(map[string]struct{})
	regs := make([]string, 0, len(cfg.Regressors))
	for _, r := range cfg.Regressors {
		r = strings.TrimSpace(r)
		if r == "" || r == out.DsCol || r == out.YCol {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		regs = append(regs, r)
	}
	out.Regressors = regs

	return out
}

// NormalizeFragment merges a loosely-typed advisor fragment over a
// fallback configuration and canonicalizes the result. Missing fields
// keep the fallback value; malformed fields are coerced to safe defaults
// rather than rejected.
func NormalizeFragment(frag *ConfigFragment, fallback domain.ForecastConfig) domain.ForecastConfig {
	merged := fallback
	if frag != nil {
		if frag.DsCol != nil {
			merged.DsCol = *frag.DsCol
		}
		if frag.YCol != nil {
			merged.YCol = *frag.YCol
		}
		if frag.Regressors != nil {
			merged.Regressors = coerceStringList(frag.Regressors)
		}
		if frag.Freq != nil {
			merged.Freq = *frag.Freq
		}
		if frag.Periods != nil {
			if n, ok := coerceInt(frag.Periods); ok {
				merged.Periods = n
			} else {
				merged.Periods = fallback.Periods
			}
		}
	}
	return NormalizeConfig(merged)
}

// coerceStringList accepts the shapes models actually emit for a list of
// column names: a JSON array, a bare string, or garbage (ignored).
func coerceStringList(v any) []string {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

// coerceInt accepts a number in any of the representations JSON decoding
// can produce, plus numeric strings.
func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
