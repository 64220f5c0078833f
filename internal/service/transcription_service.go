package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/speech"
	"clinical-notes-be/pkg/storage"

	"github.com/google/uuid"
)

const cleanupTimeout = 30 * time.Second

type ITranscriptionService interface {
	Transcribe(ctx context.Context, audio io.Reader, size int64, filename, contentType string) (string, error)
}

type TranscriptionOptions struct {
	ObjectPrefix string
	Speech       speech.Config
	Timeout      time.Duration
}

type transcriptionService struct {
	store      storage.ObjectStore
	recognizer speech.Recognizer
	publisher  events.Publisher
	logger     logger.ILogger
	opts       TranscriptionOptions
	newID      func() string
}

func NewTranscriptionService(
	store storage.ObjectStore,
	recognizer speech.Recognizer,
	publisher events.Publisher,
	logger logger.ILogger,
	opts TranscriptionOptions,
) ITranscriptionService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 600 * time.Second
	}
	return &transcriptionService{
		store:      store,
		recognizer: recognizer,
		publisher:  publisher,
		logger:     logger,
		opts:       opts,
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, audio io.Reader, size int64, filename, contentType string) (string, error) {
	if audio == nil {
		return "", fmt.Errorf("%w: no file provided", ErrInvalidInput)
	}
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if strings.TrimSpace(filename) == "" || base == "." || base == "/" {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidInput)
	}

	key := fmt.Sprintf("%s%s-%s", s.opts.ObjectPrefix, s.newID(), base)

	// Once the upload has been attempted the object is removed on every path.
	defer s.cleanup(key)

	uri, err := s.store.Put(ctx, key, audio, size, contentType)
	if err != nil {
		return "", &TranscriptionError{Stage: "upload", Err: err}
	}
	s.logger.Info("TRANSCRIBE", "Uploaded audio", map[string]interface{}{"uri": uri, "size": size})

	jobCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	results, err := s.recognizer.Recognize(jobCtx, uri, s.opts.Speech)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
			return "", &TranscriptionError{Stage: "recognize", Err: fmt.Errorf("%w after %s", ErrTimeout, s.opts.Timeout)}
		}
		return "", &TranscriptionError{Stage: "recognize", Err: err}
	}

	text := speech.JoinTranscript(results)
	s.logger.Info("TRANSCRIBE", "Transcript ready", map[string]interface{}{
		"results": len(results),
		"chars":   len(text),
	})

	if perr := s.publisher.Publish(ctx, events.New(events.AudioTranscribed, map[string]interface{}{
		"filename": base,
		"chars":    len(text),
	})); perr != nil {
		s.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{"type": events.AudioTranscribed, "error": perr.Error()})
	}

	return text, nil
}

// cleanup runs on a fresh context so that a cancelled or timed out request
// still removes its upload.
func (s *transcriptionService) cleanup(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Error("TRANSCRIBE", "Failed to delete uploaded audio", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	s.logger.Debug("TRANSCRIBE", "Deleted uploaded audio", map[string]interface{}{"key": key})
}
