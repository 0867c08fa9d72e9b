package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/medilens/report-scanner/internal/common"
	"github.com/medilens/report-scanner/internal/entity"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleScan accepts a multipart upload (field "file") or a raw body with a
// Content-Type of application/pdf or image/*, runs the pipeline, and returns
// the extraction result as JSON.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	doc, err := s.readDocument(r)
	if err != nil {
		s.logger.Warn("bad scan request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.scanTimeout)
	defer cancel()

	res, err := s.scanner.Scan(ctx, doc)
	if err != nil {
		s.writeScanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) readDocument(r *http.Request) (entity.RawDocument, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.maxUploadSize)

	ct := r.Header.Get("Content-Type")
	if ct != "" && len(ct) >= 19 && ct[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
			return entity.RawDocument{}, err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return entity.RawDocument{}, errors.New(`missing multipart field "file"`)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return entity.RawDocument{}, err
		}
		return entity.RawDocument{
			Data:     data,
			MIMEType: header.Header.Get("Content-Type"),
			Name:     header.Filename,
		}, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return entity.RawDocument{}, err
	}
	if len(data) == 0 {
		return entity.RawDocument{}, errors.New("empty request body")
	}
	return entity.RawDocument{Data: data, MIMEType: ct}, nil
}

func (s *Server) writeScanError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrUnsupportedFileType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, common.ErrUnidentifiedReport):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrAcquisitionFailure):
		status = http.StatusBadGateway
	}

	resp := errorResponse{Code: "INTERNAL", Message: "scan failed"}
	var se *common.ScanError
	if errors.As(err, &se) {
		resp.Code = se.Code
		resp.Message = se.Message
	}

	s.logger.Error("scan failed", "code", resp.Code, "status", status, "error", err)
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
