package async

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/pipeline"
)

type stubExtractor struct {
	text string
}

func (s *stubExtractor) Extract(_ context.Context, _ entity.RawDocument) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text}, nil
}

type collector struct {
	mu      sync.Mutex
	results []*entity.ExtractionResult
	errs    []error
}

func (c *collector) collect(_ Job, res *entity.ExtractionResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, res)
	c.errs = append(c.errs, err)
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

const liverText = "LIVER FUNCTION TEST\nAge: 50\nTotal Bilirubin: 1.2\nSGPT: 35"

func newTestScanner(text string) *pipeline.Scanner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return pipeline.NewScanner(&stubExtractor{text: text}, logger)
}

func TestScanQueue_ProcessesJobs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	col := &collector{}
	q := NewScanQueue(newTestScanner(liverText), col.collect, logger,
		WithWorkers(2), WithQueueSize(8), WithJobTimeout(10*time.Second))

	path := writeTempFile(t, "report.pdf", []byte("%PDF"))
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{
			ID:          uuid.New(),
			Path:        path,
			SubmittedAt: time.Now(),
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	col.mu.Lock()
	defer col.mu.Unlock()
	require.Len(t, col.results, 5)
	for i, res := range col.results {
		require.NoError(t, col.errs[i])
		require.NotNil(t, res)
		assert.Equal(t, constants.Liver, res.ReportType)
	}
}

func TestScanQueue_UnsupportedFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	col := &collector{}
	q := NewScanQueue(newTestScanner(liverText), col.collect, logger, WithWorkers(1))

	path := writeTempFile(t, "notes.txt", []byte("hello"))
	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), Path: path}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	col.mu.Lock()
	defer col.mu.Unlock()
	require.Len(t, col.errs, 1)
	assert.Error(t, col.errs[0])
	assert.Nil(t, col.results[0])
}

func TestScanQueue_MissingFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	col := &collector{}
	q := NewScanQueue(newTestScanner(liverText), col.collect, logger, WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), Path: "/does/not/exist.pdf"}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	col.mu.Lock()
	defer col.mu.Unlock()
	require.Len(t, col.errs, 1)
	assert.Error(t, col.errs[0])
}

func TestScanQueue_EnqueueAfterShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	col := &collector{}
	q := NewScanQueue(newTestScanner(liverText), col.collect, logger, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// dropped, not panicking on a closed channel
	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), Path: "x.pdf"}))

	col.mu.Lock()
	defer col.mu.Unlock()
	assert.Empty(t, col.results)
}

func TestScanQueue_ShutdownIdempotent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewScanQueue(newTestScanner(liverText), nil, logger, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
