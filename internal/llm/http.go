package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SendJSON posts body as JSON to endpoint and returns the raw response bytes
// and status code. Provider specifics (auth headers, paths) are the caller's
// concern; this only owns encoding, transport, and request logging. Every
// call carries a call_id so one enrichment round trip can be followed
// through the logs.
func SendJSON(ctx context.Context, client *http.Client, endpoint string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}

	callID := uuid.New().String()
	start := time.Now()

	payload, err := json.Marshal(body)
	if err != nil {
		logger.Error("model request encode failed", "call_id", callID, "error", err)
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logger.Error("model request build failed", "call_id", callID, "endpoint", endpoint, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Info("model request", "call_id", callID, "endpoint", endpoint, "request_bytes", len(payload))

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("model request failed", "call_id", callID, "elapsed_ms", time.Since(start).Milliseconds(), "error", err)
		return nil, 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("model response body close failed", "call_id", callID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	logger.Info("model response",
		"call_id", callID,
		"status", resp.StatusCode,
		"response_bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
