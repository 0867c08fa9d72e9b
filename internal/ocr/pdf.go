package ocr

import (
	"fmt"
	"strings"

	"context"

	"github.com/medilens/report-scanner/constants"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	// pdftotext -l <n> -enc UTF-8 -eol unix <path> -
	// -l caps extraction at the first MaxPages pages.
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext,
		"-l", fmt.Sprintf("%d", e.cfg.MaxPages),
		"-enc", "UTF-8", "-eol", "unix",
		path, "-")
	if err != nil {
		return ExtractionResult{
			SourceType: constants.PDF,
			Warnings:   []string{string(errb)},
		}, fmt.Errorf("pdftotext: %w", err)
	}

	text := string(out)
	// pdftotext separates pages with a form feed; page order is preserved
	// and pages are joined with a single newline.
	pages := 1 + strings.Count(text, "\f")
	text = Normalize(strings.ReplaceAll(text, "\f", "\n"))

	return ExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Language:   e.cfg.Language,
	}, nil
}
