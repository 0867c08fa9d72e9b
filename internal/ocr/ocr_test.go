package ocr

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

type stubRunner struct {
	stdout  string
	stderr  string
	err     error
	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return []byte(s.stdout), []byte(s.stderr), s.err
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.runner = r
	return e
}

func TestExtract_PDF(t *testing.T) {
	stub := &stubRunner{stdout: "LIVER FUNCTION TEST\fAge: 50\f"}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), entity.RawDocument{
		Data:     []byte("%PDF-1.4 fake"),
		MIMEType: "application/pdf",
		Name:     "report.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "pdftotext", stub.gotName)
	assert.Equal(t, []string{"-l", "3", "-enc", "UTF-8", "-eol", "unix"}, stub.gotArgs[:6])
	assert.Equal(t, "-", stub.gotArgs[len(stub.gotArgs)-1])

	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 3, res.Pages) // two form feeds
	assert.Equal(t, "LIVER FUNCTION TEST\nAge: 50", res.Text)
}

func TestExtract_Image(t *testing.T) {
	stub := &stubRunner{stdout: "Glucose: 148\n------\nBMI: 33.6\n"}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), entity.RawDocument{
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
		MIMEType: "image/png",
		Name:     "report.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "tesseract", stub.gotName)
	assert.Equal(t, []string{"stdout", "-l", "eng"}, stub.gotArgs[1:])

	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Glucose: 148\n\nBMI: 33.6", res.Text)
}

func TestExtract_ToolFailure(t *testing.T) {
	stub := &stubRunner{stderr: "Syntax Error: couldn't read xref table", err: errors.New("exit status 1")}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), entity.RawDocument{
		Data:     []byte("broken"),
		MIMEType: "application/pdf",
	})
	require.Error(t, err)
	assert.Contains(t, res.Warnings, "Syntax Error: couldn't read xref table")
}

func TestExtract_UnsupportedMIME(t *testing.T) {
	e := newTestExtractor(&stubRunner{})
	_, err := e.Extract(context.Background(), entity.RawDocument{
		Data:     []byte("hello"),
		MIMEType: "text/plain",
	})
	assert.Error(t, err)
}

func TestExtract_SpoolCleanup(t *testing.T) {
	dir := t.TempDir()
	stub := &stubRunner{stdout: "x"}
	e := NewExtractor(Config{TempDir: dir}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.runner = stub

	_, err := e.Extract(context.Background(), entity.RawDocument{
		Data:     []byte("%PDF"),
		MIMEType: "application/pdf",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMIMEForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"report.pdf", "application/pdf", false},
		{"report.PDF", "application/pdf", false},
		{"scan.jpg", "image/jpeg", false},
		{"scan.jpeg", "image/jpeg", false},
		{"scan.png", "image/png", false},
		{"scan.tiff", "image/tiff", false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := MIMEForPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
