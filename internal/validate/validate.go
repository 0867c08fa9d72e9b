// Package validate guarantees the shape of an extracted field map before it
// crosses the prediction-service boundary: keys restricted to the category's
// schema, numbers as JSON numbers, enums limited to their allowed values.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/medilens/report-scanner/constants"
	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/fields"
)

// BuildFieldMapJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for one category's field-name schema.
func BuildFieldMapJSONSchema(cat constants.ReportCategory) (map[string]any, error) {
	s, ok := fields.SchemaFor(cat)
	if !ok {
		return nil, fmt.Errorf("no field schema for category %q", cat)
	}

	enums := s.EnumValuesByKey()
	props := make(map[string]any)
	for _, key := range s.Keys() {
		if vals, ok := enums[key]; ok {
			props[key] = map[string]any{"enum": toAny(vals)}
			continue
		}
		props[key] = map[string]any{"type": "number"}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}, nil
}

// ValidateFieldMap checks an extracted map against its category's schema.
func ValidateFieldMap(cat constants.ReportCategory, m entity.FieldMap) error {
	schemaMap, err := BuildFieldMapJSONSchema(cat)
	if err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal field map: %w", err)
	}
	return ValidateJSONAgainstSchema(schemaMap, data)
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
