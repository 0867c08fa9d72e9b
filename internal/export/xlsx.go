// Package export renders batch scan outcomes as an XLSX audit workbook.
package export

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medilens/report-scanner/internal/entity"
)

// Record is one finished scan job, success or failure.
type Record struct {
	JobID     uuid.UUID
	Path      string
	ScannedAt time.Time
	Result    *entity.ExtractionResult // nil on failure
	Err       error                    // nil on success
}

// AuditBook collects scan records and writes them to a single-sheet
// workbook. Safe for concurrent Add from queue workers.
type AuditBook struct {
	logger *slog.Logger

	mu      sync.Mutex
	records []Record
}

func NewAuditBook(logger *slog.Logger) *AuditBook {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditBook{logger: logger}
}

func (b *AuditBook) Add(rec Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, rec)
}

func (b *AuditBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// WriteXLSX returns the workbook as bytes. Rows are ordered by scan time
// so re-runs over the same directory diff cleanly.
func (b *AuditBook) WriteXLSX() ([]byte, error) {
	start := time.Now()

	b.mu.Lock()
	recs := make([]Record, len(b.records))
	copy(recs, b.records)
	b.mu.Unlock()

	sort.Slice(recs, func(i, j int) bool { return recs[i].ScannedAt.Before(recs[j].ScannedAt) })

	f := excelize.NewFile()
	const sheet = "Scans"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Scanned At",
		"Job ID",
		"File",
		"Report Type",
		"Fields",
		"Confidence",
		"Extracted Values",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ScannedAt.UTC().Format("2006-01-02 15:04:05"))
		write(2, r.JobID.String())
		write(3, r.Path)

		if r.Err != nil {
			write(8, truncate(r.Err.Error(), 140))
			row++
			continue
		}

		write(4, string(r.Result.ReportType))
		write(5, len(r.Result.Values))
		write(6, r.Result.Confidence)
		write(7, truncate(formatValues(r.Result.Values), 200))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 38) // job id
	_ = f.SetColWidth(sheet, "C", "C", 48) // path
	_ = f.SetColWidth(sheet, "D", "D", 14) // report type
	_ = f.SetColWidth(sheet, "E", "F", 12) // counts
	_ = f.SetColWidth(sheet, "G", "G", 60) // values
	_ = f.SetColWidth(sheet, "H", "H", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	b.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// formatValues renders a field map as "key=value" pairs in key order.
func formatValues(m entity.FieldMap) string {
	out := ""
	for _, k := range m.Keys() {
		if out != "" {
			out += ", "
		}
		out += k + "=" + m[k].String()
	}
	return out
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
