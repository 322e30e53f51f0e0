package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

var durationPattern = `^([0-9]+(\.[0-9]+)?(ms|s|m))+$`

// GameSchema is the JSON schema every game file must satisfy.
var GameSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format":          map[string]any{"type": "string"},
		"id":              map[string]any{"type": "string", "pattern": `^[a-z0-9]+(-[a-z0-9]+)*$`},
		"title":           map[string]any{"type": "string", "minLength": 1},
		"topic":           map[string]any{"type": "string", "enum": topicEnum()},
		"kind":            map[string]any{"type": "string", "enum": []any{"quiz", "match", "story", "reflex", "journal"}},
		"description":     map[string]any{"type": "string"},
		"next":            map[string]any{"type": "string"},
		"coins_per_level": map[string]any{"type": "integer", "minimum": 0},
		"policy": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"advance_delay":  map[string]any{"type": "string", "pattern": durationPattern},
				"pass_score":     map[string]any{"type": "integer", "minimum": 0},
				"gate":           map[string]any{"type": "string", "enum": []any{"completion", "score"}},
				"tally":          map[string]any{"type": "string", "enum": []any{"live", "advance"}},
				"confetti":       map[string]any{"type": "boolean"},
				"flash_on_miss":  map[string]any{"type": "boolean"},
				"default_reward": map[string]any{"type": "integer", "minimum": 1},
			},
			"additionalProperties": false,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string", "minLength": 1},
					"prompt":     map[string]any{"type": "string", "minLength": 1},
					"hint":       map[string]any{"type": "string"},
					"time_limit": map[string]any{"type": "string", "pattern": durationPattern},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"label":    map[string]any{"type": "string", "minLength": 1},
								"emoji":    map[string]any{"type": "string"},
								"correct":  map[string]any{"type": "boolean"},
								"reward":   map[string]any{"type": "integer", "minimum": 0},
								"next":     map[string]any{"type": "string"},
								"ends":     map[string]any{"type": "boolean"},
								"response": map[string]any{"type": "string"},
							},
							"required":             []any{"id", "label"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "prompt"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format", "id", "title", "topic", "kind", "questions"},
	"additionalProperties": false,
}

func topicEnum() []any {
	var out []any
	for _, t := range AllTopics() {
		out = append(out, string(t))
	}
	return out
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiled returns the compiled GameSchema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go maps with typed slices.
		defBytes, err := json.Marshal(GameSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://playdeck-game.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks raw YAML against GameSchema.
func ValidateDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}

	sch, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
