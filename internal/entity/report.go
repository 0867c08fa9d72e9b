package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/medilens/report-scanner/constants"
)

// RawDocument is an uploaded report before text acquisition. It is consumed
// once by the text extractor and discarded.
type RawDocument struct {
	Data     []byte
	MIMEType string // "application/pdf" or "image/*"
	Name     string // original filename, hint only
}

// ValueKind discriminates the FieldValue union.
type ValueKind int

const (
	NumberValue ValueKind = iota
	EnumValue
)

// FieldValue is a typed clinical value: a number, or a string drawn from a
// small per-field enumeration. Free text never appears here.
type FieldValue struct {
	Kind   ValueKind
	Number float64
	Enum   string
}

func Number(v float64) FieldValue {
	return FieldValue{Kind: NumberValue, Number: v}
}

func Enum(v string) FieldValue {
	return FieldValue{Kind: EnumValue, Enum: v}
}

func (v FieldValue) String() string {
	if v.Kind == EnumValue {
		return v.Enum
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// MarshalJSON emits numbers as JSON numbers and enums as JSON strings, the
// shape the prediction service expects.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.Kind == EnumValue {
		return json.Marshal(v.Enum)
	}
	return json.Marshal(v.Number)
}

func (v *FieldValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = Number(t)
	case string:
		*v = Enum(t)
	default:
		return fmt.Errorf("field value must be number or string, got %T", raw)
	}
	return nil
}

// FieldMap maps schema field names to extracted values. Every key must belong
// to the schema of the category that produced the map.
type FieldMap map[string]FieldValue

// Keys returns the field names in sorted order.
func (m FieldMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExtractionResult is the immutable outcome of a successful scan.
type ExtractionResult struct {
	ReportType constants.ReportCategory `json:"report_type"`
	Values     FieldMap                 `json:"values"`
	Confidence float64                  `json:"confidence"` // 0..100
}
