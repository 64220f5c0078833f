package service

import (
	"errors"
	"fmt"
	"strings"

	"clinical-notes-be/pkg/llm"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("note not found")
	ErrInvalidRequest     = errors.New("no valid fields provided for update")
	ErrBackendUnavailable = errors.New("generation backend unavailable")
	ErrTimeout            = errors.New("transcription timed out")
	ErrEmptyResponse      = llm.ErrEmptyResponse
	ErrMalformedResponse  = errors.New("generated text does not look like the requested section")
)

// MissingInputError names the note sections a generation call needs but found empty.
type MissingInputError struct {
	Section string
	Fields  []string
}

func (e *MissingInputError) Error() string {
	verb := "is"
	if len(e.Fields) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("could not generate %s: %s %s missing or empty", e.Section, strings.Join(e.Fields, ", "), verb)
}

// TranscriptionError wraps a failure at one stage of the transcription flow.
type TranscriptionError struct {
	Stage string // "upload", "recognize"
	Err   error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription error (%s): %v", e.Stage, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

type GenerationError struct {
	Section string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("could not generate %s: %v", e.Section, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
