package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: service.ErrNotFound, want: 404},
		{name: "wrapped invalid input", err: fmt.Errorf("%w: empty filename", service.ErrInvalidInput), want: 400},
		{name: "empty update", err: service.ErrInvalidRequest, want: 400},
		{name: "missing input", err: &service.MissingInputError{Section: "plan", Fields: []string{"Assessment"}}, want: 400},
		{name: "fiber error", err: fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big"), want: 413},
		{name: "backend unavailable", err: service.ErrBackendUnavailable, want: 500},
		{name: "transcription", err: &service.TranscriptionError{Stage: "upload", Err: errors.New("x")}, want: 500},
		{name: "timeout", err: &service.TranscriptionError{Stage: "recognize", Err: service.ErrTimeout}, want: 500},
		{name: "empty response", err: service.ErrEmptyResponse, want: 500},
		{name: "generation", err: &service.GenerationError{Section: "summary", Err: errors.New("x")}, want: 500},
		{name: "unknown", err: errors.New("disk full"), want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

type sampleRequest struct {
	NoteId int64   `json:"note_id" validate:"required,gt=0"`
	Text   *string `json:"subjective_text" validate:"required"`
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(logger.NewNopLogger())})
	app.Post("/echo", func(ctx *fiber.Ctx) error {
		var req sampleRequest
		if err := ParseBody(ctx, &req); err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"note_id": req.NoteId, "text": *req.Text})
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return service.ErrNotFound
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestParseBody(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{name: "ok", body: `{"note_id": 1, "subjective_text": "cough"}`, wantCode: 200},
		{name: "empty text allowed", body: `{"note_id": 1, "subjective_text": ""}`, wantCode: 200},
		{name: "missing note id", body: `{"subjective_text": "cough"}`, wantCode: 400, wantError: "Missing note_id."},
		{name: "negative note id", body: `{"note_id": -3, "subjective_text": "cough"}`, wantCode: 400, wantError: "Invalid note_id."},
		{name: "null text", body: `{"note_id": 1, "subjective_text": null}`, wantCode: 400, wantError: "Missing subjective_text."},
		{name: "absent text", body: `{"note_id": 1}`, wantCode: 400, wantError: "Missing subjective_text."},
		{name: "unknown field", body: `{"note_id": 1, "subjective_text": "x", "title": "y"}`, wantCode: 400},
		{name: "wrong type", body: `{"note_id": "1", "subjective_text": "x"}`, wantCode: 400, wantError: "Invalid note_id."},
		{name: "empty body", body: ``, wantCode: 400, wantError: "Request body is required."},
		{name: "trailing data", body: `{"note_id": 1, "subjective_text": "x"} {}`, wantCode: 400},
		{name: "broken json", body: `{"note_id": 1,`, wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doJSON(t, app, "POST", "/echo", tt.body)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode != 200 {
				assert.NotEmpty(t, body["error"])
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestErrorHandlerBody(t *testing.T) {
	code, body := doJSON(t, newTestApp(), "GET", "/missing", "")
	assert.Equal(t, 404, code)
	assert.Equal(t, dto.ErrorResponse{Error: service.ErrNotFound.Error()}.Error, body["error"])
}
