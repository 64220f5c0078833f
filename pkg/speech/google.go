package speech

import (
	"context"
	"fmt"

	gspeech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

type GoogleRecognizer struct {
	client *gspeech.Client
}

func NewGoogleRecognizer(client *gspeech.Client) *GoogleRecognizer {
	return &GoogleRecognizer{client: client}
}

func (g *GoogleRecognizer) Recognize(ctx context.Context, uri string, cfg Config) ([]Result, error) {
	op, err := g.client.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			LanguageCode:               cfg.LanguageCode,
			Model:                      cfg.Model,
			EnableAutomaticPunctuation: cfg.EnableAutomaticPunctuation,
			AudioChannelCount:          int32(cfg.AudioChannelCount),
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: uri},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("submit recognition job: %w", err)
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for recognition job %s: %w", op.Name(), err)
	}

	return fromProto(resp), nil
}

func fromProto(resp *speechpb.LongRunningRecognizeResponse) []Result {
	if resp == nil {
		return nil
	}
	results := make([]Result, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alts := make([]Alternative, 0, len(r.GetAlternatives()))
		for _, a := range r.GetAlternatives() {
			alts = append(alts, Alternative{Transcript: a.GetTranscript(), Confidence: a.GetConfidence()})
		}
		results = append(results, Result{Alternatives: alts})
	}
	return results
}

func (g *GoogleRecognizer) Close() error {
	return g.client.Close()
}
