package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// horizonPattern matches "<N> <unit>" with common abbreviations,
// optionally preceded by forecast/for/next.
var horizonPattern = regexp.MustCompile(
	`(?i)\b(?:forecast\s+|for\s+|next\s+)*(\d+)\s*(days?|d|weeks?|wks?|w|months?|mos?|mo|m|years?|yrs?|y|quarters?|qtrs?|q)\b`)

// HorizonUpdate is the result of a successful horizon parse.
type HorizonUpdate struct {
	Freq    string
	Periods int
}

// ParseHorizon extracts a forecast horizon from free text. The unit
// mapping is deterministic: days->D, weeks->W, months->M, years->M with
// periods scaled by 12, and quarters scaled into the current base
// frequency (D: x90, W: x13, M: x3) since "quarter" has no native unit.
func ParseHorizon(message string, baseFreq string) (HorizonUpdate, bool) {
	m := horizonPattern.FindStringSubmatch(message)
	if m == nil {
		return HorizonUpdate{}, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return HorizonUpdate{}, false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "d"):
		return HorizonUpdate{Freq: domain.FreqDaily, Periods: n}, true
	case strings.HasPrefix(unit, "w"):
		return HorizonUpdate{Freq: domain.FreqWeekly, Periods: n}, true
	case strings.HasPrefix(unit, "y"):
		return HorizonUpdate{Freq: domain.FreqMonthly, Periods: n * 12}, true
	case strings.HasPrefix(unit, "q"):
		if !domain.IsValidFreq(baseFreq) {
			baseFreq = domain.FreqDaily
		}
		switch baseFreq {
		case domain.FreqDaily:
			n *= 90
		case domain.FreqWeekly:
			n *= 13
		case domain.FreqMonthly:
			n *= 3
		}
		return HorizonUpdate{Freq: baseFreq, Periods: n}, true
	default: // months and abbreviations
		return HorizonUpdate{Freq: domain.FreqMonthly, Periods: n}, true
	}
}

// regressor replacement triggers. The capture group holds the text
// segment that may name columns; scanning is restricted to that segment
// so the target column name elsewhere in the message cannot false-match.
var replaceTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bregressors?\s+(?:are|is)\s+(.+)$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(?:are|is)\s+my\s+regressors?\b`),
	regexp.MustCompile(`(?i)^(?:use\s+)?(.+?)\s+as\s+(?:my\s+|the\s+)?regressors?\b`),
}

// ParseRegressorReplace detects a full regressor replacement instruction.
// The boolean reports whether a trigger phrase fired at all; the list may
// be empty when the trigger fired but no candidate matched a known
// column, in which case the caller must ask for an exact column name
// instead of falling through to other strategies.
func ParseRegressorReplace(message string, columns []string, dsCol, yCol string) ([]string, bool) {
	for _, trigger := range replaceTriggers {
		m := trigger.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		return matchColumns(m[1], columns, dsCol, yCol), true
	}
	return nil, false
}

// ParseRegressorAdd detects an append instruction ("add" co-occurring
// with "regressor") and returns the first known column mentioned.
func ParseRegressorAdd(message string, columns []string, dsCol, yCol string) (string, bool) {
	m := strings.ToLower(message)
	if !strings.Contains(m, "add") || !strings.Contains(m, "regressor") {
		return "", false
	}

	matched := matchColumns(message, columns, dsCol, yCol)
	if len(matched) == 0 {
		return "", false
	}
	return matched[0], true
}

// matchColumns returns the known columns mentioned in the segment,
// case-insensitively and at word boundaries, ordered by position of
// first occurrence. ds/y columns are never candidates.
func matchColumns(segment string, columns []string, dsCol, yCol string) []string {
	lower := strings.ToLower(segment)

	type hit struct {
		col string
		pos int
	}
	var hits []hit

	for _, col := range columns {
		if col == "" || strings.EqualFold(col, dsCol) || strings.EqualFold(col, yCol) {
			continue
		}
		pos := indexWord(lower, strings.ToLower(col))
		if pos >= 0 {
			hits = append(hits, hit{col: col, pos: pos})
		}
	}

	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	out := make([]string, 0, len(hits))
	seen := make(map[string]struct{})
	for _, h := range hits {
		if _, dup := seen[h.col]; dup {
			continue
		}
		seen[h.col] = struct{}{}
		out = append(out, h.col)
	}
	return out
}

// indexWord finds needle in haystack at a word boundary, or -1.
func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		before := byte(0)
		if idx > 0 {
			before = haystack[idx-1]
		}
		after := byte(0)
		if end := idx + len(needle); end < len(haystack) {
			after = haystack[end]
		}
		if !isWordByte(before) && !isWordByte(after) {
			return idx
		}
		from = idx + 1
	}
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
