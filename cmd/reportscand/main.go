// reportscand serves the scan pipeline over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medilens/report-scanner/internal/common"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/ocr"
	"github.com/medilens/report-scanner/internal/pipeline"
	"github.com/medilens/report-scanner/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftotext: cfg.OCR.Pdftotext,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		MaxPages:  cfg.OCR.MaxPages,
		TempDir:   cfg.OCR.TempDir,
	}, logger)
	scanner := pipeline.NewScanner(extract.NewOCRAdapter(ocrx, logger), logger)

	srv := server.New(scanner, logger,
		server.WithMaxUploadSize(cfg.Server.MaxUploadSize),
		server.WithScanTimeout(cfg.Server.ScanTimeout),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
