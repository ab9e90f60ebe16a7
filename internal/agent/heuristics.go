package agent

import (
	"regexp"
	"strings"
)

// confirmTokens are exact-match messages that directly confirm the
// proposed configuration.
var confirmTokens = map[string]struct{}{
	"confirm":     {},
	"confirmed":   {},
	"yes":         {},
	"go ahead":    {},
	"proceed":     {},
	"looks good":  {},
	"lgtm":        {},
	"sounds good": {},
}

// affirmativeTokens accept a pending clarification; a superset of the
// direct confirm tokens plus casual agreement.
var affirmativeTokens = map[string]struct{}{
	"confirm": {}, "confirmed": {}, "yes": {}, "y": {}, "yep": {}, "yeah": {},
	"ok": {}, "okay": {}, "sure": {}, "go ahead": {}, "proceed": {},
	"looks good": {}, "sounds good": {}, "do it": {},
}

// negativeTokens discard a pending clarification.
var negativeTokens = map[string]struct{}{
	"no": {}, "n": {}, "nope": {}, "cancel": {}, "nevermind": {}, "never mind": {}, "discard": {},
}

// runHints mark a message as an execute-now instruction.
var runHints = []string{
	"run", "execute", "generate code", "codegen", "train", "fit",
	"forecast now", "start forecasting",
}

// instructionPatterns catch configuration instructions that would
// otherwise look like statements or questions. These must be excluded
// from QA before any inclusion rule fires.
var instructionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bregressors?\s+(are|is)\s+\w+`),
	regexp.MustCompile(`\w+\s+(are|is)\s+my\s+regressors?\b`),
	regexp.MustCompile(`\badd\s+regressors?\b`),
	regexp.MustCompile(`\badd\s+\w+\s+regressors?\b`),
	regexp.MustCompile(`\buse\s+\w+\s+as\s+(ds|y)\b`),
	regexp.MustCompile(`\bset\s+\w+\s+as\s+(ds|y)\b`),
}

// qaStarters are interrogative or advice-seeking openers.
var qaStarters = []string{
	"what", "why", "how", "which", "can you", "should i", "do you think",
	"explain", "meaning", "interpret", "suggest", "recommend",
}

// explainKeywords mark explanation requests mid-sentence.
var explainKeywords = []string{
	"explain", "interpret", "meaning", "what do the results mean", "what does this mean",
}

// IsProbablyQA reports whether a message looks like an informational
// question rather than a workflow instruction. Exclusion rules run
// before inclusion rules: instruction text can accidentally contain
// interrogative-looking substrings, never the reverse.
func IsProbablyQA(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return false
	}

	if _, ok := confirmTokens[m]; ok {
		return false
	}
	for _, h := range runHints {
		if strings.Contains(m, h) {
			return false
		}
	}
	for _, p := range instructionPatterns {
		if p.MatchString(m) {
			return false
		}
	}

	if strings.Contains(m, "?") {
		return true
	}
	for _, s := range qaStarters {
		if strings.HasPrefix(m, s) {
			return true
		}
	}
	for _, k := range explainKeywords {
		if strings.Contains(m, k) {
			return true
		}
	}

	return false
}

func isConfirmToken(message string) bool {
	_, ok := confirmTokens[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

func isAffirmativeToken(message string) bool {
	_, ok := affirmativeTokens[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

func isNegativeToken(message string) bool {
	_, ok := negativeTokens[strings.ToLower(strings.TrimSpace(message))]
	return ok
}
