package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language string // default "eng"
	MaxPages int    // PDF page cap, default 3
	TempDir  string // spool dir for uploaded bytes; "" = os.TempDir
}

// ExtractionResult is the text-acquisition summary for one document.
type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}

// Extractor turns report bytes into raw text using pdftotext and tesseract.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract dispatches on the declared MIME type. The document bytes are
// spooled to a temp file for the underlying tools and removed afterwards.
func (e *Extractor) Extract(ctx context.Context, doc entity.RawDocument) (ExtractionResult, error) {
	start := time.Now()
	format := constants.MapMIMEToFormat(doc.MIMEType)
	if format == "" {
		e.logger.Error("unsupported mime type", "mime", doc.MIMEType)
		return ExtractionResult{}, fmt.Errorf("unsupported mime type: %q", doc.MIMEType)
	}
	e.logger.Debug("starting text acquisition", "mime", doc.MIMEType, "bytes", len(doc.Data), "format", format)

	path, cleanup, err := e.spool(doc)
	if err != nil {
		return ExtractionResult{}, err
	}
	defer cleanup()

	var res ExtractionResult
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.IMAGE:
		res, err = e.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)
	return res, err
}

func (e *Extractor) spool(doc entity.RawDocument) (string, func(), error) {
	ext := constants.ExtForMIME(doc.MIMEType)
	f, err := os.CreateTemp(e.cfg.TempDir, "report-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("spool document: %w", err)
	}
	path := f.Name()
	cleanup := func() {
		if rerr := os.Remove(path); rerr != nil {
			e.logger.Warn("failed to remove temp file", "path", path, "error", rerr)
		}
	}
	if _, err := f.Write(doc.Data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("spool document: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("spool document: %w", err)
	}
	return path, cleanup, nil
}

// ExtractFile reads a file from disk and runs Extract, inferring the MIME
// type from the extension. Used by the CLI and the batch scanner.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("read file: %w", err)
	}
	mime, err := MIMEForPath(path)
	if err != nil {
		return ExtractionResult{}, err
	}
	return e.Extract(ctx, entity.RawDocument{Data: data, MIMEType: mime, Name: filepath.Base(path)})
}

// MIMEForPath infers a supported MIME type from a file extension.
func MIMEForPath(path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		return "application/pdf", nil
	case constants.IMAGE:
		if ext == "jpg" {
			ext = "jpeg"
		}
		return "image/" + ext, nil
	default:
		return "", fmt.Errorf("unsupported extension: %q", ext)
	}
}
