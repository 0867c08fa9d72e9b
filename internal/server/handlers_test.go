package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/extract"
	"github.com/medilens/report-scanner/internal/pipeline"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ entity.RawDocument) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text}, s.err
}

func newTestServer(text string, err error) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scanner := pipeline.NewScanner(&stubExtractor{text: text, err: err}, logger)
	return New(scanner, logger).Router()
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

const liverText = "LIVER FUNCTION TEST\nAge: 50\nGender: Male\nTotal Bilirubin: 1.2\nSGPT: 35\nSGOT: 40\nAlbumin: 4.0"

func TestHealthz(t *testing.T) {
	h := newTestServer("", nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestScan_Multipart(t *testing.T) {
	h := newTestServer(liverText, nil)

	body, ct := multipartBody(t, "report.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res entity.ExtractionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "liver", string(res.ReportType))
	assert.Len(t, res.Values, 6)
	assert.InDelta(t, 50.0, res.Confidence, 1e-9)
}

func TestScan_RawBody(t *testing.T) {
	h := newTestServer(liverText, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/scan", bytes.NewReader([]byte("%PDF")))
	req.Header.Set("Content-Type", "application/pdf")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestScan_UnsupportedType(t *testing.T) {
	h := newTestServer(liverText, nil)

	body, ct := multipartBody(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Code)
}

func TestScan_UnidentifiedReport(t *testing.T) {
	h := newTestServer("quarterly financial statement", nil)

	body, ct := multipartBody(t, "report.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "UNIDENTIFIED_REPORT_TYPE", resp.Code)
}

func TestScan_AcquisitionFailure(t *testing.T) {
	h := newTestServer("", errors.New("tesseract: exit status 1"))

	body, ct := multipartBody(t, "report.png", "image/png", []byte{0x89})
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ACQUISITION_FAILURE", resp.Code)
}

func TestScan_MissingFilePart(t *testing.T) {
	h := newTestServer(liverText, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/scan", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScan_EmptyBody(t *testing.T) {
	h := newTestServer(liverText, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/scan", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/pdf")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
