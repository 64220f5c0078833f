package serverutils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes a JSON body into out, rejecting unknown fields and
// trailing data, then validates it.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	body := ctx.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is required.")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, describeDecodeError(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fiber.NewError(fiber.StatusBadRequest, "Request body must contain a single JSON object.")
	}

	return ValidateRequest(out)
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Invalid %s.", typeErr.Field)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Malformed JSON at offset %d.", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "Malformed JSON."
	default:
		// "json: unknown field \"x\"" and friends
		return fmt.Sprintf("Invalid request body: %v", err)
	}
}
