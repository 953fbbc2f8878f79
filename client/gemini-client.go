package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golfclub/metrics"
)

const geminiBaseUrl = "https://generativelanguage.googleapis.com/v1beta/models"

// ErrMissingApiKey is returned before any network call is made.
var ErrMissingApiKey = errors.New("GOOGLE_GENERATIVE_AI_API_KEY is not set")

type ServiceErrorKind string

const (
	// ServiceErrorModelNotFound is likely persistent, retrying will not help.
	ServiceErrorModelNotFound ServiceErrorKind = "model_not_found"
	// ServiceErrorQuotaExceeded is transient, the caller may retry after a delay.
	ServiceErrorQuotaExceeded ServiceErrorKind = "quota_exceeded"
	ServiceErrorGeneric       ServiceErrorKind = "generic"
)

type ServiceError struct {
	Kind    ServiceErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	switch e.Kind {
	case ServiceErrorModelNotFound:
		return "Gemini model not found, check the API key configuration"
	case ServiceErrorQuotaExceeded:
		return "API quota exceeded, try again later"
	default:
		return e.Message
	}
}

// ClassifyServiceError buckets an error message by the same substring
// heuristic the rest of the system relies on: 404 means the model does not
// exist, 429/quota means rate limiting, everything else is generic.
func ClassifyServiceError(message string) *ServiceError {
	switch {
	case strings.Contains(message, "404") || strings.Contains(message, "not found"):
		return &ServiceError{Kind: ServiceErrorModelNotFound, Message: message}
	case strings.Contains(message, "429") || strings.Contains(message, "quota"):
		return &ServiceError{Kind: ServiceErrorQuotaExceeded, Message: message}
	default:
		return &ServiceError{Kind: ServiceErrorGeneric, Message: message}
	}
}

type GeminiClient struct {
	apiKey  string
	model   string
	baseUrl string
	client  *http.Client
}

func NewGeminiClient(apiKey string, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseUrl: geminiBaseUrl,
		client:  &http.Client{},
	}
}

// AnalyzeImage sends the image and prompt to the Gemini generateContent
// endpoint and returns the raw text of the first candidate. No retries are
// performed here, the caller decides whether an error is worth retrying.
func (c *GeminiClient) AnalyzeImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingApiKey
	}
	body := GeminiRequest{
		Contents: []GeminiContent{
			{
				Parts: []GeminiPart{
					{InlineData: &GeminiInlineData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(imageData),
					}},
					{Text: prompt},
				},
			},
		},
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/%s:generateContent", c.baseUrl, c.model)
	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", c.apiKey)

	metrics.GeminiRequestCounter.WithLabelValues(c.model).Inc()
	response, err := c.client.Do(request)
	if err != nil {
		return "", ClassifyServiceError(err.Error())
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", ClassifyServiceError(err.Error())
	}
	metrics.GeminiResponseCounter.WithLabelValues(fmt.Sprint(response.StatusCode)).Inc()
	if response.StatusCode != http.StatusOK {
		var errorResponse GeminiErrorResponse
		message := fmt.Sprintf("%d %s", response.StatusCode, string(responseBody))
		if err := json.Unmarshal(responseBody, &errorResponse); err == nil && errorResponse.Error.Message != "" {
			message = fmt.Sprintf("%d %s", response.StatusCode, errorResponse.Error.Message)
		}
		return "", ClassifyServiceError(message)
	}

	var geminiResponse GeminiResponse
	if err := json.Unmarshal(responseBody, &geminiResponse); err != nil {
		return "", ClassifyServiceError(err.Error())
	}
	if len(geminiResponse.Candidates) == 0 {
		return "", ClassifyServiceError("empty response from model")
	}
	text := ""
	for _, part := range geminiResponse.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}
