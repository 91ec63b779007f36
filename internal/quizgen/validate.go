package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Variant schemas enforce the per-type field requirements. An MCQ needs
// exactly four options and an in-range answer index; a short-answer item
// needs a model answer and 3 to 6 rubric keywords. Both variants need an
// explanation.
var (
	mcqSchemaDef = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type":     map[string]any{"const": "mcq"},
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": MCQOptionCount,
				"maxItems": MCQOptionCount,
			},
			"answer_index": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": MCQOptionCount - 1,
			},
			"explanation": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"type", "question", "options", "answer_index", "explanation"},
	}

	shortSchemaDef = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type":     map[string]any{"const": "short"},
			"question": map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
			"rubric_keywords": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": RubricMinKeywords,
				"maxItems": RubricMaxKeywords,
			},
			"explanation": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"type", "question", "answer", "rubric_keywords", "explanation"},
	}
)

var (
	compileOnce sync.Once
	mcqSchema   *jsonschema.Schema
	shortSchema *jsonschema.Schema
	compileErr  error
)

func compiledSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		mcqSchema, compileErr = compileSchema("mcq-item", mcqSchemaDef)
		if compileErr != nil {
			return
		}
		shortSchema, compileErr = compileSchema("short-item", shortSchemaDef)
	})
	return mcqSchema, shortSchema, compileErr
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(defBytes, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource %s: %w", name, err)
	}
	return c.Compile(url)
}

// validateItem checks one raw question against its variant schema and
// returns the typed item. Items of unknown type or failing their schema
// are rejected.
func validateItem(raw json.RawMessage) (Item, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Item{}, fmt.Errorf("invalid item JSON: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return Item{}, fmt.Errorf("item is not an object")
	}

	mcq, short, err := compiledSchemas()
	if err != nil {
		return Item{}, err
	}

	switch obj["type"] {
	case "mcq":
		if err := mcq.Validate(parsed); err != nil {
			return Item{}, fmt.Errorf("mcq item: %w", err)
		}
	case "short":
		if err := short.Validate(parsed); err != nil {
			return Item{}, fmt.Errorf("short item: %w", err)
		}
	default:
		return Item{}, fmt.Errorf("unknown item type %v", obj["type"])
	}

	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return Item{}, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}
