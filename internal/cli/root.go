// Package cli provides the codeplan command tree: an HTTP serve mode and
// an interactive terminal chat mode driving the orchestrator in-process.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/agent"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
)

// App bundles the wired dependencies the commands need.
type App struct {
	Orchestrator *agent.Orchestrator
	Datasets     *dataset.Store
	Uploads      repository.UploadRepo

	// IsInteractive reports whether stdin is a terminal; the chat
	// command refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd builds the root command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "codeplan",
		Short: "Conversational forecasting assistant for tabular datasets",
		Long: `codeplan turns a conversation about a CSV dataset into a confirmed
forecasting configuration, generates the analysis code, runs it, and
repairs failures automatically within a bounded retry budget.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(app))
	root.AddCommand(newChatCmd(app))

	return root
}
