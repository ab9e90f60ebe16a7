package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
)

func newChatCmd(app *App) *cobra.Command {
	var csvPath string
	var showCode bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat about a CSV dataset in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("chat requires an interactive terminal; use 'codeplan serve' for API access")
			}

			if csvPath == "" {
				if err := promptForCSV(&csvPath); err != nil {
					return err
				}
			}

			datasetID, err := loadDataset(app, csvPath)
			if err != nil {
				return err
			}

			model := newChatModel(app, datasetID, filepath.Base(csvPath), showCode)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&csvPath, "file", "f", "", "path to the CSV dataset")
	cmd.Flags().BoolVar(&showCode, "show-code", false, "include generated code in responses")

	return cmd
}

// promptForCSV asks for a dataset path with a small form.
func promptForCSV(path *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CSV dataset").
				Description("Path to the file you want to forecast from").
				Placeholder("data/sales.csv").
				Value(path).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("a path is required")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					return nil
				}),
		),
	)
	return form.Run()
}

// loadDataset reads the CSV, registers it in the store, and records the
// upload, returning the fresh dataset id.
func loadDataset(app *App, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	frame, err := dataset.ReadCSV(f)
	if err != nil {
		return "", fmt.Errorf("parsing dataset: %w", err)
	}

	datasetID := uuid.NewString()
	app.Datasets.Put(datasetID, frame)

	if err := app.Uploads.Create(cmdContext(), &repository.UploadRecord{
		DatasetID: datasetID,
		Filename:  filepath.Base(path),
		NumRows:   frame.NumRows(),
		NumCols:   len(frame.Columns),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return "", err
	}
	return datasetID, nil
}
