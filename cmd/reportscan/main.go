// reportscan runs the scan pipeline once over a single file and prints the
// extraction result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/medilens/report-scanner/internal/common"
	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/ocr"
	"github.com/medilens/report-scanner/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "reportscan <report.pdf|report.png>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ScanTimeout)
	defer cancel()

	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		MaxPages:  cfg.OCR.MaxPages,
		TempDir:   cfg.OCR.TempDir,
	}, logger)
	scanner := pipeline.NewScanner(extract.NewOCRAdapter(ocrx, logger), logger)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}
	mime, err := ocr.MIMEForPath(path)
	if err != nil {
		logger.Error("unsupported file", "path", path, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := scanner.Scan(ctx, entity.RawDocument{
		Data:     data,
		MIMEType: mime,
		Name:     filepath.Base(path),
	})
	if err != nil {
		logger.Error("scan failed", "path", path, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("scan OK",
		"report_type", res.ReportType,
		"fields", len(res.Values),
		"confidence", res.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
