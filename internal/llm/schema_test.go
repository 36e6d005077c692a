package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichmentSchemaValidation(t *testing.T) {
	t.Parallel()

	schema := BuildEnrichmentJSONSchema([]string{"Invoice", "Receipt", "Other"})

	valid := []byte(`{
		"summary": "An invoice from ACME.",
		"structured_data": {"vendor": "ACME", "total": 120.5},
		"category": "Invoice",
		"financial_type": "EXPENSE",
		"confidence": 0.9,
		"reasoning": "mentions an invoice number"
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(schema, valid))

	tests := []struct {
		name string
		data string
	}{
		{"missing summary", `{"structured_data":{},"category":"Other","financial_type":"UNKNOWN","confidence":0.1}`},
		{"category outside taxonomy", `{"summary":"x","structured_data":{},"category":"Novel","financial_type":"UNKNOWN","confidence":0.1}`},
		{"bad financial type", `{"summary":"x","structured_data":{},"category":"Other","financial_type":"PROFIT","confidence":0.1}`},
		{"confidence above one", `{"summary":"x","structured_data":{},"category":"Other","financial_type":"UNKNOWN","confidence":1.5}`},
		{"structured_data not object", `{"summary":"x","structured_data":[],"category":"Other","financial_type":"UNKNOWN","confidence":0.5}`},
		{"extra property", `{"summary":"x","structured_data":{},"category":"Other","financial_type":"UNKNOWN","confidence":0.5,"mood":"great"}`},
		{"not json", `{"summary":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.data)))
		})
	}
}

func TestEnrichmentSchemaOpenCategory(t *testing.T) {
	t.Parallel()

	// Without a taxonomy any category string passes.
	schema := BuildEnrichmentJSONSchema(nil)
	data := []byte(`{"summary":"x","structured_data":{},"category":"Novel","financial_type":"UNKNOWN","confidence":0.2}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, data))
}
