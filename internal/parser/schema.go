package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/eventsnap/eventsnap/constants"
)

// BuildEventJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the extracted-fields document. The pipeline
// validates against it before anything reaches the events table.
func BuildEventJSONSchema() map[string]any {
	props := map[string]any{
		"title":                 strProp(),
		"date":                  dateProp(),
		"start_time":            clockProp(),
		"end_time":              clockProp(),
		"venue":                 strProp(),
		"address":               strProp(),
		"fee":                   map[string]any{"type": "string", "pattern": `^\$[0-9]+ per [A-Za-z]+$`},
		"registration_deadline": dateProp(),
		"registration_link":     strProp(),
		"contact_name1":         strProp(),
		"contact_phone1":        strProp(),
		"contact_name2":         strProp(),
		"contact_title2":        strProp(),
		"organization":          strProp(),
		"notes":                 strProp(),
		"categories": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string", "minLength": 1},
			"uniqueItems": true,
		},
		"category": map[string]any{
			"type": "string",
			"enum": constants.AsStringSlice(),
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"category", "categories"},
	}
}

func strProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func clockProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^([01]\d|2[0-3]):[0-5]\d$`}
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
