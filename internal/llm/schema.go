package llm

// BuildCategorySchema returns a JSON-Schema (draft 2020-12 subset) for the
// classifier's answer: a single "category" key constrained to the allowed
// labels. Used both as a prompt constraint and to validate the response.
func BuildCategorySchema(allowedCategories []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": allowedCategories,
			},
		},
		"required": []string{"category"},
	}
}

// BuildInsightActionsSchema constrains the structured half of an insight
// response.
func BuildInsightActionsSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"budget_recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category":            map[string]any{"type": "string"},
						"suggestion":          map[string]any{"type": "string"},
						"est_monthly_savings": map[string]any{"type": "number"},
					},
					"required": []string{"category", "suggestion"},
				},
			},
			"tax_preparation": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item":           map[string]any{"type": "string"},
						"why_it_matters": map[string]any{"type": "string"},
					},
					"required": []string{"item"},
				},
			},
			"risks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"risk":         map[string]any{"type": "string"},
						"watch_metric": map[string]any{"type": "string"},
					},
					"required": []string{"risk"},
				},
			},
		},
		"required": []string{"budget_recommendations", "tax_preparation", "risks"},
	}
}
