package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ModelClient is the text-generation collaborator: prompt in, raw model
// output out. The service layer owns echo stripping and JSON extraction.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HTTPModelClient calls a remote inference endpoint that accepts
// {"prompt": ...} and answers {"response": ...}.
type HTTPModelClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPModelClient(endpoint string) *HTTPModelClient {
	return &HTTPModelClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *HTTPModelClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("encode model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("model endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}

	log.Printf("Model generated %d characters in %s", len(parsed.Response), time.Since(start).Round(time.Millisecond))
	return parsed.Response, nil
}
