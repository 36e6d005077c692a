package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "enrichment.json"

// ValidateJSONAgainstSchema checks a model response against the structured
// output schema the request was constrained with. Schemas are small and vary
// per document category, so each call compiles fresh rather than caching.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	schema, err := compileSchema(schemaMap)
	if err != nil {
		return err
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("model output does not conform to schema: %w", err)
	}
	return nil
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
