package llm

import (
	"strings"
)

// BuildSystemPrompt composes the system message with the allowed category
// taxonomy and strict-but-practical formatting rules.
func BuildSystemPrompt(req EnrichRequest) string {
	var catLine string
	if len(req.AllowedCategories) > 0 {
		catLine = "You MUST include a 'category' and it MUST be exactly one of the allowed enum. " +
			"If uncertain, choose 'Other'. Allowed categories (enum): " + strings.Join(req.AllowedCategories, ", ") + ". "
	} else {
		catLine = "You MUST include a 'category' that is a short, sensible label. If uncertain, use 'Other'. "
	}

	parts := []string{
		"You are a document analyst. Return ONLY JSON that matches the provided JSON Schema.",
		"Under 'structured_data', extract key entities and structured values from the document: names, dates, amounts, addresses, contact information, and any other relevant structured data.",
		"Under 'summary', write a concise summary of the document in 2-4 sentences.",
		catLine,
		"Classify 'financial_type' as INCOME if the document relates to sales, revenue or money coming in, EXPENSE if it relates to purchases, costs or money going out, and UNKNOWN otherwise.",
		"'confidence' is your confidence in the categorization as a number between 0 and 1.",
		"'reasoning' is a brief explanation for the categorization.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt wraps the extracted text with the filename hint.
func BuildUserPrompt(text, filenameHint string) string {
	var b strings.Builder
	if filenameHint != "" {
		b.WriteString("Filename: " + filenameHint + "\n\n")
	}
	b.WriteString("Document text:\n")
	b.WriteString(text)
	return b.String()
}
