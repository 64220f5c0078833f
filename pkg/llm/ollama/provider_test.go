package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinical-notes-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsSingleUserMessage(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "  ### Diagnosis / Impression: viral URI \n"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "medllama")
	text, err := p.Generate(context.Background(), "prompt body")

	require.NoError(t, err)
	assert.Equal(t, "### Diagnosis / Impression: viral URI", text)
	assert.Equal(t, "medllama", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "prompt body", got.Messages[0].Content)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty content", status: http.StatusOK, body: `{"message":{"role":"assistant","content":"  "},"done":true}`, wantErr: llm.ErrEmptyResponse},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`},
		{name: "error field", status: http.StatusOK, body: `{"error":"model not found"}`},
		{name: "bad json", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOllamaProvider(srv.URL, "m").Generate(context.Background(), "p")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestModelOverride(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"message":{"role":"assistant","content":"ok"},"done":true}`))
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "default").Generate(context.Background(), "p", llm.WithModel("other"), llm.WithMaxTokens(64))
	require.NoError(t, err)
	assert.Equal(t, "other", got.Model)
	assert.Equal(t, 64, got.Options.NumPredict)
}
