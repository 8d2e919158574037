package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

//go:generate mockgen -source=summary_client.go -destination=mock/summary_client_mock.go -package=mock

// Client generates a short prose narrative from a prompt. Implemented
// by the Gemini REST client; tests substitute a mock.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	requestTimeout = 12 * time.Second
)

var errNoAPIKey = errors.New("GEMINI_API_KEY is not set")

type geminiClient struct {
	http   *http.Client
	apiKey string
}

func NewGeminiClient() Client {
	return &geminiClient{
		http:   &http.Client{Timeout: requestTimeout},
		apiKey: os.Getenv("GEMINI_API_KEY"),
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errNoAPIKey
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := geminiEndpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
