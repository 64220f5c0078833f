// Package speech submits long-running recognition jobs for uploaded audio.
package speech

import (
	"context"
	"strings"
)

type Config struct {
	LanguageCode               string
	Model                      string
	EnableAutomaticPunctuation bool
	AudioChannelCount          int
}

type Alternative struct {
	Transcript string
	Confidence float32
}

// Result is one recognized utterance, alternatives ordered best first.
type Result struct {
	Alternatives []Alternative
}

// Recognizer runs a recognition job over audio at uri and blocks until it
// finishes or ctx is done.
type Recognizer interface {
	Recognize(ctx context.Context, uri string, cfg Config) ([]Result, error)
}

// JoinTranscript concatenates the top alternative of every result, separated
// by single spaces. Results without alternatives are skipped.
func JoinTranscript(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if len(r.Alternatives) == 0 {
			continue
		}
		b.WriteString(r.Alternatives[0].Transcript)
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}
