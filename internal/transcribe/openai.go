package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cinveen/dictate/internal/config"
)

const openaiAPIBase = "https://api.openai.com"

// OpenAI implements Transcriber using OpenAI Whisper API.
type OpenAI struct {
	apiKey   string
	model    string
	language string
	prompt   string
	baseURL  string
	client   *http.Client
}

// NewOpenAI creates a new OpenAI transcriber.
// The apiKey parameter must be non-empty and model must be configured.
func NewOpenAI(cfg config.OpenAIConfig, apiKey string) *OpenAI {
	// Note: apiKey and model validation is done in the New() factory function
	return &OpenAI{
		apiKey:   apiKey,
		model:    cfg.Model,
		language: cfg.Language,
		prompt:   cfg.Prompt,
		baseURL:  openaiAPIBase,
		client:   &http.Client{},
	}
}

// openaiResponse represents the API response from OpenAI Whisper.
type openaiResponse struct {
	Text string `json:"text"`
}

// Transcribe converts audio to text using OpenAI Whisper API.
func (o *OpenAI) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key is required")
	}

	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return "", fmt.Errorf("audio file not found at %s", audioPath)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	if err := writer.WriteField("model", o.model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}

	if o.language != "" {
		if err := writer.WriteField("language", o.language); err != nil {
			return "", fmt.Errorf("failed to write language field: %w", err)
		}
	}

	if o.prompt != "" {
		if err := writer.WriteField("prompt", o.prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/v1/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result openaiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Text, nil
}
