// Package huggingface implements the TextGenerator and Transcriber ports
// against the hosted inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.TextGenerator = (*Client)(nil)
	_ driven.Transcriber   = (*Client)(nil)
)

// Client calls the hosted inference API. One network call per operation, no
// retries; every failure comes back as a wrapped error.
type Client struct {
	baseURL    string
	apiKey     string
	modelFa    string
	modelEn    string
	httpClient *http.Client
}

// NewClient creates a Client for the given inference endpoint and bearer key.
// modelFa and modelEn are the speech-to-text model ids picked per language.
func NewClient(baseURL, apiKey, modelFa, modelEn string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		modelFa:    modelFa,
		modelEn:    modelEn,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// Intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, apiKey, modelFa, modelEn string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		modelFa:    modelFa,
		modelEn:    modelEn,
		httpClient: httpClient,
	}
}

// generateRequest is the JSON body of a text-generation call.
type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// Generate sends the prompt to the named model and extracts the generated
// text from whichever response shape the API returned.
func (c *Client) Generate(ctx context.Context, modelID, prompt string, params driven.GenerateParams) (string, error) {
	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens:   params.MaxNewTokens,
			Temperature:    params.Temperature,
			ReturnFullText: params.ReturnFullText,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	raw, err := c.post(ctx, c.baseURL+"/"+modelID, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	text, err := extractGeneratedText(raw)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", modelID, err)
	}
	return text, nil
}

// Transcribe sends raw audio bytes to the per-language speech model and
// extracts the recognized text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	modelID := c.modelEn
	if language == "fa" {
		modelID = c.modelFa
	}

	raw, err := c.post(ctx, c.baseURL+"/"+modelID, "application/octet-stream", bytes.NewReader(audio))
	if err != nil {
		return "", err
	}

	text, err := extractTranscript(raw)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", modelID, err)
	}
	return text, nil
}

// post performs one authenticated POST and returns the raw response body.
func (c *Client) post(ctx context.Context, endpoint, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference call: status %d: %s", resp.StatusCode, truncate(raw))
	}
	return raw, nil
}

// truncate caps an error body for inclusion in error messages.
func truncate(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
