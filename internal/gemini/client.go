package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Google Generative Language REST API. It only knows how
// to move requests and responses; fallback behavior on failure lives in the
// generation service.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// maxGenerateRetries bounds the backoff loop around each vendor call.
const maxGenerateRetries = 3

// GenerateText sends a plain text prompt and returns the generated text.
// Failures are retried with backoff before the error is surfaced. An empty
// response body with a 200 status yields "" and no error; the caller decides
// what an empty result means.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	var text string
	err := c.RetryWithBackoff(func() error {
		var err error
		text, err = c.generate(ctx, []part{{Text: prompt}})
		return err
	}, maxGenerateRetries)
	return text, err
}

// GenerateFromImage sends inline image bytes plus an instruction, retrying
// failures with backoff like GenerateText.
func (c *Client) GenerateFromImage(ctx context.Context, image []byte, mimeType, instruction string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	parts := []part{
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
		{Text: instruction},
	}

	var text string
	err := c.RetryWithBackoff(func() error {
		var err error
		text, err = c.generate(ctx, parts)
		return err
	}, maxGenerateRetries)
	return text, err
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: parts}},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate content failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	// A syntactically valid response with no candidates or no text is not a
	// transport failure; return it as empty text.
	var sb strings.Builder
	if len(result.Candidates) > 0 {
		for _, p := range result.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic.
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
