package bootstrap

import (
	"context"
	"fmt"

	"clinical-notes-be/internal/config"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/llm"
	"clinical-notes-be/pkg/llm/factory"
	pktNats "clinical-notes-be/pkg/nats"
	"clinical-notes-be/pkg/speech"
	"clinical-notes-be/pkg/storage"

	gcs "cloud.google.com/go/storage"
	gspeech "cloud.google.com/go/speech/apiv1"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Gateways are the external collaborators. LLM and Forward may be nil.
type Gateways struct {
	Store      storage.ObjectStore
	Recognizer speech.Recognizer
	LLM        llm.LLMProvider
	Forward    events.Publisher

	closers []func() error
}

func (g *Gateways) Close() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
}

// NewGateways builds the cloud clients. Object storage and speech are required;
// the generation backend and the NATS relay degrade to disabled on failure.
func NewGateways(ctx context.Context, cfg *config.Config, log logger.ILogger) (*Gateways, error) {
	gw := &Gateways{}

	var clientOpts []option.ClientOption
	if cfg.Google.CredentialsFile == "" {
		log.Warn("BOOT", "GOOGLE_APPLICATION_CREDENTIALS is not set, relying on ambient credentials", nil)
	}
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		log.Warn("BOOT", "No default Google credentials found", map[string]interface{}{"error": err.Error()})
	} else {
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}

	switch cfg.Storage.Provider {
	case "local":
		store, err := storage.NewLocalStore(cfg.Storage.LocalDir)
		if err != nil {
			return nil, err
		}
		gw.Store = store
	default:
		client, err := gcs.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		store, err := storage.NewGCSStore(client, cfg.Storage.Bucket)
		if err != nil {
			client.Close()
			return nil, err
		}
		gw.Store = store
		gw.closers = append(gw.closers, store.Close)
	}

	speechClient, err := gspeech.NewClient(ctx, clientOpts...)
	if err != nil {
		gw.Close()
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	recognizer := speech.NewGoogleRecognizer(speechClient)
	gw.Recognizer = recognizer
	gw.closers = append(gw.closers, recognizer.Close)

	provider, err := factory.NewLLMProvider(ctx, factory.Config{
		Provider:  cfg.Ai.LLMProvider,
		Model:     cfg.Ai.LLMModel,
		Project:   cfg.Google.ProjectID,
		Location:  cfg.Google.Location,
		APIKey:    cfg.Ai.GeminiAPIKey,
		OllamaURL: cfg.Ai.OllamaBaseURL,
	})
	switch {
	case err != nil:
		log.Error("BOOT", "Generation backend unavailable", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "error": err.Error()})
	case provider == nil:
		log.Warn("BOOT", "Generation backend disabled", map[string]interface{}{"provider": cfg.Ai.LLMProvider})
	default:
		gw.LLM = provider
		log.Info("BOOT", "Generation backend ready", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "model": cfg.Ai.LLMModel})
	}

	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Warn("BOOT", "Failed to connect to NATS, events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			gw.Forward = natsPub
			gw.closers = append(gw.closers, func() error { natsPub.Close(); return nil })
		}
	}

	return gw, nil
}
