package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	Google        GoogleConfig
	Storage       StorageConfig
	Speech        SpeechConfig
	Ai            AIConfig
	Events        EventsConfig
	Observability ObservabilityConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	StaticDir          string
	BodyLimitMB        int
}

type DatabaseConfig struct {
	Driver     string // "sqlite" or "postgres"
	Connection string
}

type GoogleConfig struct {
	ProjectID       string
	Location        string
	CredentialsFile string
}

type StorageConfig struct {
	Provider     string // "gcs" or "local"
	Bucket       string
	ObjectPrefix string
	LocalDir     string
}

type SpeechConfig struct {
	LanguageCode  string
	Model         string
	AudioChannels int
	Timeout       time.Duration
}

type AIConfig struct {
	LLMProvider   string // "vertex", "gemini", "ollama" or "none"
	LLMModel      string
	GeminiAPIKey  string
	OllamaBaseURL string
}

type EventsConfig struct {
	Topic   string
	NatsURL string
}

type ObservabilityConfig struct {
	OtelEnabled  bool
	OtelEndpoint string
	ServiceName  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", ""),
			BodyLimitMB:        getEnvAsInt("UPLOAD_BODY_LIMIT_MB", 64),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "notes_main.db"),
		},
		Google: GoogleConfig{
			ProjectID:       getEnv("VERTEX_AI_PROJECT_ID", getEnv("GOOGLE_CLOUD_PROJECT", "")),
			Location:        getEnv("VERTEX_AI_LOCATION", "us-central1"),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Storage: StorageConfig{
			Provider:     getEnv("STORAGE_PROVIDER", "gcs"),
			Bucket:       getEnv("GCS_BUCKET_NAME", ""),
			ObjectPrefix: getEnv("GCS_OBJECT_PREFIX", "audio_uploads/"),
			LocalDir:     getEnv("LOCAL_STORAGE_DIR", "uploads"),
		},
		Speech: SpeechConfig{
			LanguageCode:  getEnv("SPEECH_LANGUAGE_CODE", "en-US"),
			Model:         getEnv("SPEECH_MODEL", "medical_conversation"),
			AudioChannels: getEnvAsInt("SPEECH_AUDIO_CHANNELS", 2),
			Timeout:       getEnvAsDuration("TRANSCRIPTION_TIMEOUT", 600*time.Second),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "vertex"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-2.5-pro"),
			GeminiAPIKey:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Events: EventsConfig{
			Topic:   getEnv("EVENTS_TOPIC", "note_events"),
			NatsURL: getEnv("NATS_URL", ""),
		},
		Observability: ObservabilityConfig{
			OtelEnabled:  getEnv("OTEL_ENABLED", "false") == "true",
			OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "clinical-notes-backend"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("90s", "10m") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
