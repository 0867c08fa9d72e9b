// reportbatch scans every supported file under a directory and writes an
// XLSX audit workbook of the results.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/async"
	"github.com/medilens/report-scanner/internal/common"
	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/export"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/ocr"
	"github.com/medilens/report-scanner/internal/pipeline"
)

func main() {
	var (
		dir = flag.String("dir", "", "directory to scan (required)")
		out = flag.String("out", "", "output XLSX path (default: BATCH_EXPORT_PATH)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("usage", "cmd", "reportbatch --dir <reports-dir> [--out results.xlsx]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *out == "" {
		*out = cfg.Batch.ExportPath
	}

	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		MaxPages:  cfg.OCR.MaxPages,
		TempDir:   cfg.OCR.TempDir,
	}, logger)
	scanner := pipeline.NewScanner(extract.NewOCRAdapter(ocrx, logger), logger)

	book := export.NewAuditBook(logger)
	queue := async.NewScanQueue(scanner,
		func(job async.Job, res *entity.ExtractionResult, err error) {
			book.Add(export.Record{
				JobID:     job.ID,
				Path:      job.Path,
				ScannedAt: time.Now(),
				Result:    res,
				Err:       err,
			})
		},
		logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithQueueSize(cfg.Batch.QueueSize),
		async.WithJobTimeout(cfg.Batch.JobTimeout),
	)

	ctx := context.Background()
	submitted := 0
	walkErr := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if constants.MapExtToFormat(ext) == "" {
			logger.Debug("skipping unsupported file", "path", path)
			return nil
		}
		job := async.Job{ID: uuid.New(), Path: path, SubmittedAt: time.Now()}
		if err := queue.Enqueue(ctx, job); err != nil {
			return err
		}
		submitted++
		return nil
	})

	drainCtx, cancel := context.WithTimeout(ctx, time.Duration(submitted+1)*cfg.Batch.JobTimeout)
	queue.Shutdown(drainCtx)
	cancel()

	if walkErr != nil {
		logger.Error("directory walk failed", "dir", *dir, "error", walkErr)
		os.Exit(1)
	}
	if submitted == 0 {
		logger.Warn("no supported files found", "dir", *dir)
		os.Exit(0)
	}

	data, err := book.WriteXLSX()
	if err != nil {
		logger.Error("write workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete", "dir", *dir, "files", submitted, "out", *out)
}
