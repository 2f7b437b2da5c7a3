package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const fileSchemaURL = "schema://pathfinder-catalog.json"

// fileSchema is the JSON schema a catalog file must satisfy before the
// structural checks in validateQuestions run.
var fileSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "section", "type", "prompt"},
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"section": map[string]any{"type": "string", "enum": []any{"psychometric", "technical", "wiscar"}},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"scale", "choice", "scenario", "likert", "multiple-choice"},
					},
					"prompt":   map[string]any{"type": "string", "minLength": 1},
					"options":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"category": map[string]any{"type": "string"},
					"weight":   map[string]any{"type": "number", "minimum": 0},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks a parsed document (as produced by encoding/json)
// against the catalog file schema.
func validateSchema(doc any) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileFileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func compileFileSchema() (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded JSON value, so round-trip the map.
	defBytes, err := json.Marshal(fileSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(fileSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(fileSchemaURL)
}
