// Package recognizer talks to the external handwriting recognition service.
package recognizer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/i-nap/lekhsewa/internal/apperrors"
)

// prompt is the fixed transcription instruction sent with every image.
const prompt = "Can you read the character in the text it is nepali handwriting. " +
	"Just give the answer not anything more. If u cannot read it just say Not Recognized.Try Again."

// Client dispatches image bytes for transcription.
type Client interface {
	Recognize(ctx context.Context, imageData []byte, contentType string) (string, error)
}

// Config configures the HTTP recognizer client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewHTTPClient builds a Client backed by the recognizer's HTTP API.
func NewHTTPClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}
}

type recognizeRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
	Prompt   string `json:"prompt"`
}

type recognizeResponse struct {
	Word string `json:"word"`
}

// Recognize sends the image and returns the recognized text verbatim.
// Timeouts, 429 and 5xx map to ErrRecognizerUnavailable; remaining 4xx to
// ErrRecognizerRejected, so callers can tell retry-worthy failures apart.
func (h *httpClient) Recognize(ctx context.Context, imageData []byte, contentType string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recognizeRequest{
			Image:    base64.StdEncoding.EncodeToString(imageData),
			MimeType: contentType,
			Prompt:   prompt,
		}).
		Post("/recognize")
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrRecognizerUnavailable, err)
	}

	if err := classifyStatus(resp.StatusCode()); err != nil {
		return "", err
	}

	var body recognizeResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode recognizer response: %w", err)
	}
	return body.Word, nil
}

func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w: status %d", apperrors.ErrRecognizerUnavailable, status)
	default:
		return fmt.Errorf("%w: status %d", apperrors.ErrRecognizerRejected, status)
	}
}
