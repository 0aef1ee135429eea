package worksheet

// fileSchema is the JSON Schema for worksheet definition files loaded
// with LoadFile. It rejects malformed files before decoding so error
// messages point at the offending field instead of a zero-value struct.
var fileSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "description", "difficulty", "sections"},
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"estimated_time": map[string]any{"type": "string"},
		"objectives": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"sections": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    sectionSchema,
		},
	},
	"additionalProperties": false,
}

var sectionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "questions"},
	"properties": map[string]any{
		"id":            map[string]any{"type": "string", "minLength": 1},
		"title":         map[string]any{"type": "string", "minLength": 1},
		"description":   map[string]any{"type": "string"},
		"time_estimate": map[string]any{"type": "string"},
		"objectives": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "kind", "label"},
	"properties": map[string]any{
		"id":   map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{
				"text", "long_text", "single_choice", "multi_choice_checklist",
				"scale", "ranking", "matrix", "file_upload",
			},
		},
		"label":       map[string]any{"type": "string", "minLength": 1},
		"help_text":   map[string]any{"type": "string"},
		"placeholder": map[string]any{"type": "string"},
		"hint":        map[string]any{"type": "string"},
		"required":    map[string]any{"type": "boolean"},
		"choices": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"scale": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"min": map[string]any{"type": "integer"},
				"max": map[string]any{"type": "integer"},
				"labels": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 2,
				},
			},
		},
		"rows":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"columns": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"rules": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"min_length": map[string]any{"type": "integer", "minimum": 0},
				"max_length": map[string]any{"type": "integer", "minimum": 0},
				"pattern":    map[string]any{"type": "string"},
			},
			"additionalProperties": false,
		},
	},
	"additionalProperties": false,
}
