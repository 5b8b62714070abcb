package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/registry"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/export"
)

// ExportFormat names a rendered output.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

var exportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportFormatPDF:  "application/pdf",
}

// ExportSource lists the records of one resource.
type ExportSource interface {
	Schema() *registry.Schema
	Records(ctx context.Context) (interface{}, error)
}

// ExportResult is a rendered export ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders resource lists as CSV, XLSX or PDF. Hidden columns
// such as password hashes are never exported.
type ExportService struct {
	sources map[string]ExportSource
	csv     csvRenderer
	xlsx    titledRenderer
	pdf     titledRenderer
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService over sources keyed by resource.
func NewExportService(sources []ExportSource, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	byResource := make(map[string]ExportSource, len(sources))
	for _, src := range sources {
		byResource[src.Schema().Resource] = src
	}
	return &ExportService{
		sources: byResource,
		csv:     export.NewCSVExporter(),
		xlsx:    export.NewXLSXExporter(),
		pdf:     export.NewPDFExporter(),
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ParseExportFormat validates a format query value; empty means CSV.
func ParseExportFormat(raw string) (ExportFormat, error) {
	format := ExportFormat(strings.ToLower(strings.TrimSpace(raw)))
	if format == "" {
		return ExportFormatCSV, nil
	}
	if _, ok := exportContentTypes[format]; !ok {
		return "", appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("unsupported export format %q", raw))
	}
	return format, nil
}

// Export renders every record of resource in format.
func (s *ExportService) Export(ctx context.Context, resource string, format ExportFormat) (*ExportResult, error) {
	src, ok := s.sources[resource]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("resource %q cannot be exported", resource))
	}
	contentType, ok := exportContentTypes[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("unsupported export format %q", format))
	}

	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}
	schema := src.Schema()
	dataset, err := buildDataset(schema.ExportColumns(), records)
	if err != nil {
		return nil, s.fail(schema.Resource, format, err)
	}

	var body []byte
	switch format {
	case ExportFormatCSV:
		body, err = s.csv.Render(dataset)
	case ExportFormatXLSX:
		body, err = s.xlsx.Render(dataset, schema.Plural)
	case ExportFormatPDF:
		body, err = s.pdf.Render(dataset, schema.Plural)
	}
	if err != nil {
		return nil, s.fail(schema.Resource, format, err)
	}

	s.metrics.RecordOperation(schema.Resource, "export_"+string(format), "ok")
	s.metrics.RecordExport(schema.Resource, format, len(dataset.Rows), len(body))
	return &ExportResult{
		Filename:    fmt.Sprintf("%s_%s.%s", sanitizeFilename(schema.Resource), s.now().Format("20060102_150405"), format),
		ContentType: contentType,
		Body:        body,
		Rows:        len(dataset.Rows),
	}, nil
}

func (s *ExportService) fail(resource string, format ExportFormat, err error) error {
	s.metrics.RecordOperation(resource, "export_"+string(format), "error")
	s.logger.Error("export failed", zap.String("resource", resource), zap.String("format", string(format)), zap.Error(err))
	return appErrors.Internal(err, fmt.Sprintf("failed to export %s", resource))
}

// buildDataset flattens records through their JSON form so every column is
// rendered the way API clients see it.
func buildDataset(columns []string, records interface{}) (export.Dataset, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return export.Dataset{}, fmt.Errorf("encode records: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var objects []map[string]interface{}
	if err := dec.Decode(&objects); err != nil {
		return export.Dataset{}, fmt.Errorf("decode records: %w", err)
	}

	rows := make([]map[string]string, 0, len(objects))
	for _, obj := range objects {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			row[col] = cellValue(obj[col])
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: columns, Rows: rows}, nil
}

func cellValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

func sanitizeFilename(raw string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
