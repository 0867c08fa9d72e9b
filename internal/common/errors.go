package common

import (
	"errors"
	"fmt"
)

// Scan failure classes. A scan either yields a complete ExtractionResult or
// one of these; there are no partial results.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrAcquisitionFailure  = errors.New("text acquisition failed")
	ErrUnidentifiedReport  = errors.New("unidentified report type")
)

// ScanError carries a stable code, a human-readable reason, and the
// underlying cause when one exists.
type ScanError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Cause
}

// Error constructors. The sentinel is always reachable via errors.Is.
func NewUnsupportedFileType(mime string) *ScanError {
	return &ScanError{
		Code:    "UNSUPPORTED_FILE_TYPE",
		Message: fmt.Sprintf("file type %q is not supported; upload a PDF or image", mime),
		Cause:   ErrUnsupportedFileType,
	}
}

func NewAcquisitionFailure(diag string, cause error) *ScanError {
	msg := "could not read text from the document"
	if diag != "" {
		msg = fmt.Sprintf("%s: %s", msg, diag)
	}
	return &ScanError{
		Code:    "ACQUISITION_FAILURE",
		Message: msg,
		Cause:   fmt.Errorf("%w: %w", ErrAcquisitionFailure, cause),
	}
}

func NewUnidentifiedReport() *ScanError {
	return &ScanError{
		Code:    "UNIDENTIFIED_REPORT_TYPE",
		Message: "could not identify report type; ensure the report contains clear medical terminology",
		Cause:   ErrUnidentifiedReport,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
