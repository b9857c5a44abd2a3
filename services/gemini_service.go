package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	geminiModel    = "gemini-2.5-flash"
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
)

// GeminiService generates project descriptions through the Gemini REST API.
type GeminiService struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiService reads GEMINI_API_KEY from the environment. A missing key
// does not fail construction; the error surfaces on first use so the rest of
// the application keeps working with the feature disabled.
func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:   os.Getenv("GEMINI_API_KEY"),
		model:    geminiModel,
		endpoint: geminiEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether a credential is present.
func (s *GeminiService) Configured() bool {
	return s.apiKey != ""
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
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription asks the model for a service description for the given
// project name. Returns ErrMissingAPIKey when no credential is configured and
// ErrEmptyAIResponse when the model answers without text.
func (s *GeminiService) GenerateDescription(ctx context.Context, projectName string) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	prompt := fmt.Sprintf(`Write a professional and concise service description for a project titled: "%s". The description should be suitable for a project management system.`, projectName)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("error building AI request: %v", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", s.endpoint, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error building AI request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to communicate with the AI service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to communicate with the AI service: status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error parsing AI response: %v", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAIResponse
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyAIResponse
	}
	return text, nil
}
