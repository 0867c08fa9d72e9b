package extract

import (
	"context"
	"log/slog"

	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/ocr"
)

type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, doc entity.RawDocument) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, doc)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
	}, err
}
