// Package fields turns raw report text into a typed map of clinical values.
//
// Extraction is schema-driven: each category owns an ordered table of field
// specs (key, value kind, recognizer patterns), and a single engine walks the
// table. Adding a field or a category is a data change, not new control flow.
package fields

import (
	"regexp"
	"strconv"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
)

// Kind is the value kind a field spec parses.
type Kind int

const (
	Integer    Kind = iota // numeric, \d+ token
	Float                  // numeric, \d+(\.\d+)? token
	Enumerated             // phrase presence selects a fixed value
	Flag                   // topic presence selects Yes/No
)

// EnumCase maps qualifying phrases to a fixed value.
type EnumCase struct {
	phrases []*regexp.Regexp
	Value   entity.FieldValue
}

// FieldSpec describes how one field (or a set of mirrored keys) is
// recognized. Patterns are tried in declared order; the first match wins and
// later patterns for the spec are skipped.
type FieldSpec struct {
	Keys []string // usually one; mirrors (ALT/SGPT) list all keys written
	Kind Kind

	Patterns []*regexp.Regexp // Integer/Float: capture group holds the token
	Cases    []EnumCase       // Enumerated
	Topics   []*regexp.Regexp // Flag: topic phrases
	Yes, No  entity.FieldValue

	Transform func(float64) float64 // optional, numeric kinds only
}

// Schema is the ordered field table for one report category. Spec order is
// significant: a later spec targeting an already-set key overwrites it
// (serum urea over BUN in the kidney table).
type Schema struct {
	Category constants.ReportCategory
	Fields   []FieldSpec
}

var reYes = phrase("yes")

// Extract applies the field specs in declared order and returns the
// populated map. Pure and deterministic; unmatched fields are simply absent,
// never defaulted.
func (s *Schema) Extract(text string) entity.FieldMap {
	m := make(entity.FieldMap)
	for i := range s.Fields {
		fs := &s.Fields[i]
		if v, ok := fs.match(text); ok {
			for _, k := range fs.Keys {
				m[k] = v
			}
		}
	}
	return m
}

func (fs *FieldSpec) match(text string) (entity.FieldValue, bool) {
	switch fs.Kind {
	case Integer, Float:
		for _, re := range fs.Patterns {
			sub := re.FindStringSubmatch(text)
			if sub == nil {
				continue
			}
			tok := firstGroup(sub)
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				// non-numeric capture leaves the field unset
				continue
			}
			if fs.Transform != nil {
				f = fs.Transform(f)
			}
			return entity.Number(f), true
		}
	case Enumerated:
		for _, c := range fs.Cases {
			if matchAny(text, c.phrases) {
				return c.Value, true
			}
		}
	case Flag:
		if matchAny(text, fs.Topics) {
			if reYes.MatchString(text) {
				return fs.Yes, true
			}
			return fs.No, true
		}
	}
	return entity.FieldValue{}, false
}

// Keys returns every key the schema can populate, in declared order,
// without duplicates from mirrored or overwriting specs.
func (s *Schema) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, fs := range s.Fields {
		for _, k := range fs.Keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// EnumValuesByKey returns, for each enum-valued key, its allowed values.
func (s *Schema) EnumValuesByKey() map[string][]string {
	out := make(map[string][]string)
	for _, fs := range s.Fields {
		var vals []string
		switch fs.Kind {
		case Enumerated:
			for _, c := range fs.Cases {
				if c.Value.Kind == entity.EnumValue {
					vals = append(vals, c.Value.Enum)
				}
			}
		case Flag:
			if fs.Yes.Kind == entity.EnumValue {
				vals = append(vals, fs.Yes.Enum, fs.No.Enum)
			}
		}
		if len(vals) == 0 {
			continue
		}
		for _, k := range fs.Keys {
			out[k] = vals
		}
	}
	return out
}

var byCategory = map[constants.ReportCategory]*Schema{
	constants.Heart:    heartSchema,
	constants.Diabetes: diabetesSchema,
	constants.Kidney:   kidneySchema,
	constants.Liver:    liverSchema,
}

// SchemaFor returns the field table for a scannable category.
func SchemaFor(cat constants.ReportCategory) (*Schema, bool) {
	s, ok := byCategory[cat]
	return s, ok
}

// ExtractFor runs the category's schema over the text. The bool is false for
// Unknown and unrecognized categories.
func ExtractFor(cat constants.ReportCategory, text string) (entity.FieldMap, bool) {
	s, ok := byCategory[cat]
	if !ok {
		return nil, false
	}
	return s.Extract(text), true
}

func firstGroup(sub []string) string {
	for _, g := range sub[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

func matchAny(text string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
