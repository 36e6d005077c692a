package llm

// BuildEnrichmentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate what comes back.
func BuildEnrichmentJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"summary": map[string]any{"type": "string", "minLength": 1},
		"structured_data": map[string]any{
			"type": "object",
		},
		"category": map[string]any{"type": "string"},
		"financial_type": map[string]any{
			"type": "string",
			"enum": []string{"INCOME", "EXPENSE", "UNKNOWN"},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"reasoning":  map[string]any{"type": "string"},
	}
	required := []string{"summary", "structured_data", "category", "financial_type", "confidence"}

	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
