package recognizer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-nap/lekhsewa/internal/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestHTTPClient_Recognize(t *testing.T) {
	imageData := []byte{0x89, 'P', 'N', 'G'}

	t.Run("decodes the recognized word", func(t *testing.T) {
		var got recognizeRequest
		cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/recognize", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(recognizeResponse{Word: "क"})
		})

		word, err := cli.Recognize(context.Background(), imageData, "image/png")

		assert.NoError(t, err)
		assert.Equal(t, "क", word)
		assert.Equal(t, base64.StdEncoding.EncodeToString(imageData), got.Image)
		assert.Equal(t, "image/png", got.MimeType)
		assert.NotEmpty(t, got.Prompt)
	})

	t.Run("status code mapping", func(t *testing.T) {
		tests := []struct {
			name    string
			status  int
			wantErr error
		}{
			{name: "rate limited", status: http.StatusTooManyRequests, wantErr: apperrors.ErrRecognizerUnavailable},
			{name: "server error", status: http.StatusInternalServerError, wantErr: apperrors.ErrRecognizerUnavailable},
			{name: "bad gateway", status: http.StatusBadGateway, wantErr: apperrors.ErrRecognizerUnavailable},
			{name: "bad request", status: http.StatusBadRequest, wantErr: apperrors.ErrRecognizerRejected},
			{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: apperrors.ErrRecognizerRejected},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				})

				_, err := cli.Recognize(context.Background(), imageData, "image/png")
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		cli := NewHTTPClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

		_, err := cli.Recognize(context.Background(), imageData, "image/png")
		assert.ErrorIs(t, err, apperrors.ErrRecognizerUnavailable)
	})
}
