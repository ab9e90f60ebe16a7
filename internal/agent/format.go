package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

const (
	// confirmCTA closes every proposal/update message.
	confirmCTA = "Reply with 'confirm' to proceed, or tell me changes in natural language " +
		"(e.g., 'use Date as ds, Sales as y, add Price regressor, forecast 60 days')."

	// retryNotice is the interim message while a repair cycle runs.
	retryNotice = "I hit an execution error while running the generated forecasting code. " +
		"I'm regenerating a corrected version and retrying."

	// clarifyPrompt is the generic next-step instruction when a message
	// could not be classified.
	clarifyPrompt = "Please confirm the proposed ds/y/regressors, or specify changes."

	resultPreviewRows = 10
)

// renderConfig renders a configuration as the bullet list shown to the user.
func renderConfig(cfg domain.ForecastConfig) string {
	return fmt.Sprintf(
		"- ds: %s\n- y: %s\n- regressors: [%s]\n- freq: %s\n- periods: %d",
		cfg.DsCol, cfg.YCol, strings.Join(cfg.Regressors, ", "), cfg.Freq, cfg.Periods)
}

// proposalMessage is the first-turn reply: plan, proposed config,
// rationale, and the call to action.
func proposalMessage(planText string, cfg domain.ForecastConfig, rationale string) string {
	var b strings.Builder
	if planText != "" {
		b.WriteString(planText)
		b.WriteString("\n\n")
	}
	b.WriteString("Proposed configuration:\n")
	b.WriteString(renderConfig(cfg))
	if rationale != "" {
		b.WriteString("\n\nRationale: ")
		b.WriteString(rationale)
	}
	b.WriteString("\n\n")
	b.WriteString(confirmCTA)
	return b.String()
}

// updatedMessage reports an updated proposal and re-prompts for confirmation.
func updatedMessage(cfg domain.ForecastConfig, note string) string {
	var b strings.Builder
	if note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}
	b.WriteString("Updated proposed configuration:\n")
	b.WriteString(renderConfig(cfg))
	b.WriteString("\n\nReply with 'confirm' to proceed, or specify further changes.")
	return b.String()
}

// confirmedMessage announces the confirmed configuration.
func confirmedMessage(cfg domain.ForecastConfig) string {
	return "Confirmed configuration:\n" + renderConfig(cfg) +
		"\n\nGenerating code and running the forecast now."
}

// unknownColumnMessage asks the user to name an exact column.
func unknownColumnMessage(columns []string) string {
	return "I couldn't match that to a known column. Please name an exact column to use as a regressor.\n" +
		"Known columns: " + strings.Join(columns, ", ")
}

// pendingDiscardedMessage follows a rejected clarification.
const pendingDiscardedMessage = "Okay, discarded that suggestion. " +
	"Please tell me explicitly what to change, or reply 'confirm' to proceed as proposed."

// successSummary renders a completed forecast: row accounting plus a
// bounded preview of the first rows.
func successSummary(out *domain.ForecastResult) string {
	var b strings.Builder
	b.WriteString("Forecast completed.\n\n")
	fmt.Fprintf(&b, "Training rows used: %d\n", out.TrainingRows)
	fmt.Fprintf(&b, "Input rows: %d\n", out.InputRows)
	fmt.Fprintf(&b, "Forecast rows: %d\n\n", len(out.Forecast))

	n := len(out.Forecast)
	if n > resultPreviewRows {
		n = resultPreviewRows
	}
	if n > 0 {
		b.WriteString("Forecast (head):\n")
		cols := forecastColumns(out)
		for _, rec := range out.Forecast[:n] {
			parts := make([]string, 0, len(cols))
			for _, c := range cols {
				parts = append(parts, fmt.Sprintf("%s=%v", c, rec[c]))
			}
			b.WriteString(strings.Join(parts, "  "))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// failureSummary renders the terminal message after the repair budget is
// exhausted.
func failureSummary(execError string) string {
	return "I could not successfully execute the generated code after retries.\n\n" +
		"Error: " + execError + "\n\n" +
		"If you want, paste the columns you intend for ds/y/regressors and I will tighten the generation."
}

// forecastColumns returns result record keys in a stable, readable order:
// the ds column first, then the forecast/lower/upper columns derived from
// y, then anything else alphabetically.
func forecastColumns(out *domain.ForecastResult) []string {
	if len(out.Forecast) == 0 {
		return nil
	}

	first := out.Forecast[0]
	preferred := []string{
		out.ConfigUsed.DsCol,
		out.ConfigUsed.YCol + "_forecast",
		out.ConfigUsed.YCol + "_lower",
		out.ConfigUsed.YCol + "_upper",
	}

	var cols []string
	used := make(map[string]struct{})
	for _, c := range preferred {
		if _, ok := first[c]; ok {
			cols = append(cols, c)
			used[c] = struct{}{}
		}
	}

	var rest []string
	for k := range first {
		if _, ok := used[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}
