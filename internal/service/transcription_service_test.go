package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/speech"
	"clinical-notes-be/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscriptionForTest(store *storage.TestStore, rec *speech.TestRecognizer, pub events.Publisher, timeout time.Duration) *transcriptionService {
	svc := NewTranscriptionService(store, rec, pub, logger.NewNopLogger(), TranscriptionOptions{
		ObjectPrefix: "audio_uploads/",
		Speech: speech.Config{
			LanguageCode:               "en-US",
			Model:                      "medical_conversation",
			EnableAutomaticPunctuation: true,
			AudioChannelCount:          2,
		},
		Timeout: timeout,
	}).(*transcriptionService)
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func TestTranscribeSuccess(t *testing.T) {
	store := storage.NewTestStore()
	rec := &speech.TestRecognizer{Results: []speech.Result{
		{Alternatives: []speech.Alternative{{Transcript: "Patient reports cough."}}},
		{},
		{Alternatives: []speech.Alternative{{Transcript: "No fever at home."}, {Transcript: "no fever a tome"}}},
	}}
	pub := &recordingPublisher{}
	svc := newTranscriptionForTest(store, rec, pub, time.Second)

	text, err := svc.Transcribe(context.Background(), strings.NewReader("RIFFdata"), 8, "visit.wav", "audio/wav")

	require.NoError(t, err)
	assert.Equal(t, "Patient reports cough. No fever at home.", text)

	uri, cfg := rec.Last()
	assert.Equal(t, "mem://audio_uploads/fixed-id-visit.wav", uri)
	assert.Equal(t, "medical_conversation", cfg.Model)
	assert.Equal(t, 2, cfg.AudioChannelCount)

	assert.Equal(t, 1, store.Puts())
	assert.Equal(t, []string{"audio_uploads/fixed-id-visit.wav"}, store.Deletes())
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, []string{events.AudioTranscribed}, pub.types())
}

func TestTranscribeZeroResultsIsEmptyString(t *testing.T) {
	store := storage.NewTestStore()
	svc := newTranscriptionForTest(store, &speech.TestRecognizer{}, nil, time.Second)

	text, err := svc.Transcribe(context.Background(), strings.NewReader("x"), 1, "silence.wav", "")

	require.NoError(t, err)
	assert.Equal(t, "", text)
	assert.Len(t, store.Deletes(), 1)
}

func TestTranscribeDeletesExactlyOnceOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		store     func() *storage.TestStore
		rec       *speech.TestRecognizer
		timeout   time.Duration
		wantStage string
		wantErr   error
	}{
		{
			name: "upload fails",
			store: func() *storage.TestStore {
				s := storage.NewTestStore()
				s.PutErr = errors.New("bucket missing")
				return s
			},
			rec:       &speech.TestRecognizer{},
			timeout:   time.Second,
			wantStage: "upload",
		},
		{
			name:      "job fails",
			store:     storage.NewTestStore,
			rec:       &speech.TestRecognizer{Err: errors.New("invalid audio encoding")},
			timeout:   time.Second,
			wantStage: "recognize",
		},
		{
			name:      "job times out",
			store:     storage.NewTestStore,
			rec:       &speech.TestRecognizer{Delay: time.Second},
			timeout:   20 * time.Millisecond,
			wantStage: "recognize",
			wantErr:   ErrTimeout,
		},
		{
			name: "delete failure is not surfaced",
			store: func() *storage.TestStore {
				s := storage.NewTestStore()
				s.DeleteErr = errors.New("permission denied")
				return s
			},
			rec:       &speech.TestRecognizer{Err: errors.New("quota")},
			timeout:   time.Second,
			wantStage: "recognize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store()
			svc := newTranscriptionForTest(store, tt.rec, nil, tt.timeout)

			_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), 1, "visit.wav", "")

			var terr *TranscriptionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.wantStage, terr.Stage)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, []string{"audio_uploads/fixed-id-visit.wav"}, store.Deletes())
		})
	}
}

func TestTranscribeRejectsMissingInput(t *testing.T) {
	store := storage.NewTestStore()
	rec := &speech.TestRecognizer{}
	svc := newTranscriptionForTest(store, rec, nil, time.Second)

	for _, name := range []string{"", "   ", "/"} {
		_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), 1, name, "")
		assert.ErrorIs(t, err, ErrInvalidInput, "filename %q", name)
	}

	_, err := svc.Transcribe(context.Background(), nil, 0, "visit.wav", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, store.Puts())
	assert.Empty(t, store.Deletes())
	assert.Zero(t, rec.Calls())
}

func TestTranscribeStripsClientPath(t *testing.T) {
	store := storage.NewTestStore()
	rec := &speech.TestRecognizer{}
	svc := newTranscriptionForTest(store, rec, nil, time.Second)

	_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), 1, `C:\Users\dr\visit.wav`, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"audio_uploads/fixed-id-visit.wav"}, store.Deletes())
}
