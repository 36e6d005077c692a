package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/internal/llm"
)

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Enrich implements llm.Enricher using chat/completions with a JSON-Schema
// constrained response, validated locally before decoding.
func (c *Client) Enrich(ctx context.Context, req llm.EnrichRequest) (llm.EnrichmentFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.enrich.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"allowed_categories", len(req.AllowedCategories),
	)

	schema := llm.BuildEnrichmentJSONSchema(req.AllowedCategories)
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req.Text, req.FilenameHint)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	raw, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		c.logger.Error("llm.enrich.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.EnrichmentFields{}, nil, err
	}

	content, err := decodeChoice(raw)
	if err != nil {
		c.logger.Error("llm.enrich.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.EnrichmentFields{}, raw, err
	}
	rawContent := []byte(llm.StripCodeFence(content))

	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.logger.Error("llm.enrich.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.EnrichmentFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var fields llm.EnrichmentFields
	if err := json.Unmarshal(rawContent, &fields); err != nil {
		return llm.EnrichmentFields{}, rawContent, fmt.Errorf("decode enrichment fields: %w", err)
	}

	c.logger.Info("llm.enrich.success",
		"req_id", rid,
		"category", fields.Category,
		"financial_type", fields.FinancialType,
		"confidence", fields.Confidence,
		"structured_keys", len(fields.StructuredData),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, rawContent, nil
}

// GenerateText implements llm.TextModel. With an image data URL attached the
// request becomes a multimodal OCR-style extraction; otherwise it is a plain
// text-in text-out completion.
func (c *Client) GenerateText(ctx context.Context, req llm.TextRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	var userContent any
	if req.ImageDataURL != "" {
		parts := []map[string]any{
			{"type": "text", "text": req.Prompt},
			{"type": "image_url", "image_url": map[string]any{"url": req.ImageDataURL}},
		}
		userContent = parts
	} else {
		userContent = req.Prompt + "\n\n" + req.Text
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": userContent},
		},
	}

	c.logger.Info("llm.text.start",
		"req_id", rid, "model", c.cfg.Model,
		"text_len", len(req.Text), "has_image", req.ImageDataURL != "",
	)

	raw, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		c.logger.Error("llm.text.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	content, err := decodeChoice(raw)
	if err != nil {
		c.logger.Error("llm.text.decode_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	c.logger.Info("llm.text.success",
		"req_id", rid, "bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	return raw, err
}

func decodeChoice(raw []byte) (string, error) {
	var cc chatCompletion
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
