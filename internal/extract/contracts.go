package extract

import (
	"context"
	"time"

	"github.com/medilens/report-scanner/internal/entity"
)

// TextExtractor is stage 1 of the pipeline: document bytes -> raw text.
// The OCR engine and PDF text layer behind it are black boxes.
type TextExtractor interface {
	Extract(ctx context.Context, doc entity.RawDocument) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}
