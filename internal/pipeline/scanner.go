// Package pipeline orchestrates one report scan: text acquisition, category
// classification, field extraction, confidence scoring.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/classify"
	"github.com/medilens/report-scanner/internal/common"
	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/fields"
	"github.com/medilens/report-scanner/internal/validate"
)

// Scanner runs the report-understanding pipeline. Construct it once at
// process start and share it between requests: after construction it holds
// no mutable state, so concurrent scans are independent.
type Scanner struct {
	text   extract.TextExtractor
	logger *slog.Logger
}

func NewScanner(text extract.TextExtractor, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{text: text, logger: logger}
}

// Scan turns a raw document into a complete ExtractionResult or a
// *common.ScanError. There are no partial results: a failure at any stage
// aborts the scan, and field-level misses are reflected in the confidence
// score rather than in an error.
func (s *Scanner) Scan(ctx context.Context, doc entity.RawDocument) (*entity.ExtractionResult, error) {
	if constants.MapMIMEToFormat(doc.MIMEType) == "" {
		s.logger.Warn("scan rejected", "mime", doc.MIMEType, "name", doc.Name)
		return nil, common.NewUnsupportedFileType(doc.MIMEType)
	}

	res, err := s.text.Extract(ctx, doc)
	if err != nil {
		s.logger.Error("text acquisition failed", "name", doc.Name, "error", err)
		return nil, common.NewAcquisitionFailure(strings.Join(res.Warnings, "; "), err)
	}
	s.logger.Debug("text acquired",
		"name", doc.Name,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
	)

	category := classify.Classify(res.Text)
	if category == constants.Unknown {
		s.logger.Warn("report type not identified", "name", doc.Name, "bytes", len(res.Text))
		return nil, common.NewUnidentifiedReport()
	}

	values, ok := fields.ExtractFor(category, res.Text)
	if !ok {
		// unreachable while the classifier's categories and the field
		// tables stay in sync
		return nil, common.NewUnidentifiedReport()
	}
	confidence := fields.Score(category, len(values))

	if err := validate.ValidateFieldMap(category, values); err != nil {
		s.logger.Error("extracted map failed schema validation", "category", category, "error", err)
		return nil, common.WrapError(err, "validate extraction")
	}

	s.logger.Info("scan complete",
		"name", doc.Name,
		"report_type", category,
		"fields", len(values),
		"confidence", confidence,
	)
	return &entity.ExtractionResult{
		ReportType: category,
		Values:     values,
		Confidence: confidence,
	}, nil
}
