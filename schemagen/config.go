package schemagen

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// GoogleBackend selects the underlying Google backend.
type GoogleBackend int

const (
	// GoogleBackendAuto chooses based on presence of Project/Location (Vertex) or not (Gemini API).
	GoogleBackendAuto GoogleBackend = iota
	// GoogleBackendGemini uses Gemini Developer API.
	GoogleBackendGemini
	// GoogleBackendVertex uses Vertex AI (requires Project and Location).
	GoogleBackendVertex
)

// Config contains client-wide configuration.
// APIKey and BaseURL address the generation service; the provider fields are
// only read when Provider selects local generation.
type Config struct {
	APIKey  string // falls back to env SCHEMAGEN_API_KEY if empty and DetectEnv is true
	BaseURL string // falls back to env SCHEMAGEN_BASE_URL if empty and DetectEnv is true

	// Provider defaults to ProviderRemote.
	Provider Provider

	// Default model per provider if the Definition does not name one.
	DefaultModelOpenAI string
	DefaultModelGoogle string

	// OpenAI configuration.
	OpenAIAPIKey  string // falls back to env OPENAI_API_KEY if empty and DetectEnv is true
	OpenAIBaseURL string // optional; supports compatible endpoints
	OpenAIOrgID   string

	// Google/GenAI configuration.
	GoogleAPIKey   string // falls back to env GOOGLE_API_KEY if empty and DetectEnv is true
	GoogleProject  string // required for Vertex AI
	GoogleLocation string // required for Vertex AI
	GoogleBaseURL  string
	GoogleBackend  GoogleBackend

	// Shared client options. A zero Timeout leaves requests unbounded.
	HTTPClient *http.Client
	Timeout    time.Duration

	// Logger receives debug records for every outbound call. Nil discards.
	Logger *slog.Logger

	// Auto-detection.
	DetectEnv bool // when true, pull missing values from environment
}

func (cfg Config) withEnv() Config {
	if !cfg.DetectEnv {
		return cfg
	}
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}
	fill(&cfg.APIKey, "SCHEMAGEN_API_KEY")
	fill(&cfg.BaseURL, "SCHEMAGEN_BASE_URL")
	fill(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	fill(&cfg.OpenAIOrgID, "OPENAI_ORG_ID")
	fill(&cfg.GoogleAPIKey, "GOOGLE_API_KEY")
	fill(&cfg.GoogleProject, "GOOGLE_CLOUD_PROJECT")
	fill(&cfg.GoogleLocation, "GOOGLE_CLOUD_LOCATION")
	return cfg
}

func (cfg Config) httpClient() *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{Timeout: cfg.Timeout}
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.DiscardHandler)
