package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Dataset is tabular export content. Rows are keyed by header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

var errNoHeaders = errors.New("dataset has no headers")

// CSVExporter writes datasets as RFC 4180 CSV. Free-text cells that a
// spreadsheet would evaluate as a formula are prefixed with a quote.
type CSVExporter struct {
	Comma rune
}

// NewCSVExporter builds a comma separated exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{Comma: ','}
}

// Render buffers the output of Write.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams data to w, header line first. Missing cells are empty.
func (e *CSVExporter) Write(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return errNoHeaders
	}
	out := csv.NewWriter(w)
	if e.Comma != 0 {
		out.Comma = e.Comma
	}
	if err := out.Write(data.Headers); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	line := make([]string, len(data.Headers))
	for n, row := range data.Rows {
		for i, h := range data.Headers {
			line[i] = neutralise(row[h])
		}
		if err := out.Write(line); err != nil {
			return fmt.Errorf("csv row %d: %w", n+1, err)
		}
	}
	out.Flush()
	return out.Error()
}

// neutralise keeps numbers such as "-12.5" intact.
func neutralise(cell string) string {
	if cell == "" {
		return cell
	}
	switch cell[0] {
	case '=', '+', '-', '@', '\t', '\r':
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return cell
		}
		return "'" + cell
	}
	return cell
}
