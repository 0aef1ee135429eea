package coach

// reviewSchema is the structure the model must return for a worksheet
// review.
var reviewSchema = &Schema{
	Name:        "worksheet-review",
	Description: "Structured feedback on a founder's completed worksheet",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentences summarizing the overall quality of the answers",
			},
			"strengths": map[string]any{
				"type":        "array",
				"description": "Specific things the founder did well, quoting their answers where useful",
				"items":       map[string]any{"type": "string"},
			},
			"gaps": map[string]any{
				"type":        "array",
				"description": "Weak or missing reasoning the founder should revisit",
				"items":       map[string]any{"type": "string"},
			},
			"next_steps": map[string]any{
				"type":        "array",
				"description": "Concrete actions for the coming week, most important first",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"summary", "strengths", "gaps", "next_steps"},
		"additionalProperties": false,
	},
}
