package ocr

import (
	"context"
	"fmt"

	"github.com/medilens/report-scanner/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	// tesseract <file> stdout -l <lang>, default engine settings.
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return ExtractionResult{
			SourceType: constants.IMAGE,
			Warnings:   []string{string(errb)},
		}, fmt.Errorf("tesseract: %w", err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return ExtractionResult{
		Text:       Normalize(txt),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.Language,
	}, nil
}
