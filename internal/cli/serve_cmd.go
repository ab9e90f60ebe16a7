package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/api"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (upload + chat endpoints)",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer(app.Orchestrator, app.Datasets, app.Uploads)

			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			if err := http.ListenAndServe(addr, server.Routes()); err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		},
	}

	defaultAddr := os.Getenv("CODEPLAN_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8000"
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
