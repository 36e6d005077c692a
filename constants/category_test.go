package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		want      Category
		wantKnown bool
	}{
		{"Invoice", Invoice, true},
		{"invoice", Invoice, true},
		{"  RECEIPT ", Receipt, true},
		{"bill", Invoice, true},
		{"agreement", Contract, true},
		{"bank statement", Statement, true},
		{"memo", Letter, true},
		{"lorem ipsum", Other, false},
		{"", Other, false},
	}

	for _, tt := range tests {
		got, known := CanonicalizeCategory(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.wantKnown, known, "input %q", tt.input)
	}
}

func TestCanonicalizeFinancialType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FinancialIncome, CanonicalizeFinancialType("income"))
	assert.Equal(t, FinancialExpense, CanonicalizeFinancialType(" EXPENSE "))
	assert.Equal(t, FinancialUnknown, CanonicalizeFinancialType("revenue"))
	assert.Equal(t, FinancialUnknown, CanonicalizeFinancialType(""))
}

func TestCategoryNamesStable(t *testing.T) {
	t.Parallel()

	names := CategoryNames()
	assert.Len(t, names, 8)
	assert.Equal(t, "Invoice", names[0])
	assert.Equal(t, "Other", names[len(names)-1])
}
