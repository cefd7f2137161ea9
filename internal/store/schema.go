package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema describes the exported profile JSON document. Imports are
// validated against it before anything touches the store.
var profileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string", "minLength": 1},
		"settings": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"inputMode":       map[string]any{"type": "string", "enum": []any{"keyboard", "choices"}},
				"soundEnabled":    map[string]any{"type": "boolean"},
				"musicEnabled":    map[string]any{"type": "boolean"},
				"negativeNumbers": map[string]any{"type": "boolean"},
			},
			"required": []any{"inputMode", "soundEnabled", "musicEnabled", "negativeNumbers"},
		},
		"progress": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"totalStars":    map[string]any{"type": "integer", "minimum": 0},
				"level":         map[string]any{"type": "integer", "minimum": 1},
				"achievements":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"currentStreak": map[string]any{"type": "integer", "minimum": 0},
				"bestStreak":    map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"totalStars", "level", "achievements", "currentStreak", "bestStreak"},
		},
		"history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":                map[string]any{"type": "string"},
					"totalQuestions":    map[string]any{"type": "integer", "minimum": 0},
					"correctAnswers":    map[string]any{"type": "integer", "minimum": 0},
					"correctOnFirstTry": map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"id", "totalQuestions", "correctAnswers"},
			},
		},
		"createdAt":    map[string]any{"type": "string"},
		"lastActiveAt": map[string]any{"type": "string"},
	},
	"required": []any{"name", "settings", "progress", "history", "createdAt", "lastActiveAt"},
}

var (
	compiledProfileSchema     *jsonschema.Schema
	compileProfileSchemaOnce  sync.Once
	compileProfileSchemaError error
)

func getProfileSchema() (*jsonschema.Schema, error) {
	compileProfileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Round-trip the definition to normalize it.
		defBytes, err := json.Marshal(profileSchema)
		if err != nil {
			compileProfileSchemaError = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileProfileSchemaError = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://profile.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileProfileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledProfileSchema, compileProfileSchemaError = c.Compile(schemaURL)
	})
	return compiledProfileSchema, compileProfileSchemaError
}

// ValidateProfileJSON checks an exported profile document against the
// profile schema.
func ValidateProfileJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getProfileSchema()
	if err != nil {
		return fmt.Errorf("compile profile schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}
