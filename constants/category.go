package constants

import (
	"strings"
)

// Category is the primary document classification produced by the enricher.
type Category string

const (
	Invoice   Category = "Invoice"
	Receipt   Category = "Receipt"
	Contract  Category = "Contract"
	Report    Category = "Report"
	Statement Category = "Statement"
	Letter    Category = "Letter"
	Form      Category = "Form"
	Other     Category = "Other"
)

var allCategories = []Category{
	Invoice,
	Receipt,
	Contract,
	Report,
	Statement,
	Letter,
	Form,
	Other,
}

// CategoryNames returns the closed category set as strings, in declaration order.
func CategoryNames() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps a free-form model label onto the closed set.
// The second return reports whether the label was recognized.
func CanonicalizeCategory(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"bill":           Invoice,
		"tax invoice":    Invoice,
		"purchase order": Invoice,
		"ticket":         Receipt,
		"agreement":      Contract,
		"lease":          Contract,
		"bank statement": Statement,
		"memo":           Letter,
		"application":    Form,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}

// FinancialType classifies the money flow a document represents.
type FinancialType string

const (
	FinancialIncome  FinancialType = "INCOME"
	FinancialExpense FinancialType = "EXPENSE"
	FinancialUnknown FinancialType = "UNKNOWN"
)

// FinancialTypes holds the allowed values for the documents.financial_type column.
var FinancialTypes = []string{
	string(FinancialIncome),
	string(FinancialExpense),
	string(FinancialUnknown),
}

// CanonicalizeFinancialType maps a model label onto the closed set,
// defaulting to UNKNOWN.
func CanonicalizeFinancialType(input string) FinancialType {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case string(FinancialIncome):
		return FinancialIncome
	case string(FinancialExpense):
		return FinancialExpense
	}
	return FinancialUnknown
}
