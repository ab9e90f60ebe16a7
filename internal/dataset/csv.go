package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// ErrEmptyDataset indicates the uploaded file had no header row.
var ErrEmptyDataset = errors.New("dataset is empty")

// ReadCSV parses CSV content into a frame. The first record is treated as
// the header; blank header cells get positional names so every column is
// addressable.
func ReadCSV(r io.Reader) (*domain.Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		columns[i] = h
	}

	return &domain.Frame{
		Columns: columns,
		Rows:    records[1:],
	}, nil
}

// WriteCSV serializes a frame back to CSV, header first. Used to hand the
// dataset to the execution boundary.
func WriteCSV(w io.Writer, f *domain.Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range f.Rows {
		if len(row) < len(f.Columns) {
			padded := make([]string, len(f.Columns))
			copy(padded, row)
			row = padded
		}
		if err := writer.Write(row[:len(f.Columns)]); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
