package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/serenitylabs/serenity/internal/envconfig"
)

// Session backends.
const (
	SessionBackendMemory    = "memory"
	SessionBackendFirestore = "firestore"
)

// Config encapsulates the runtime configuration for the Serenity service.
type Config struct {
	Port         string `validate:"required,number"`
	GCPProjectID string
	Session      SessionConfig
	Translate    TranslateConfig
	Voice        VoiceConfig
	Responder    ResponderConfig
}

// SessionConfig selects and tunes the conversation store.
type SessionConfig struct {
	Backend      string `validate:"oneof=memory firestore"`
	EmulatorHost string
}

// TranslateConfig wires the remote detect/translate capability. An empty API
// key leaves the service on the offline detector.
type TranslateConfig struct {
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
}

// VoiceConfig toggles the speech companion module.
type VoiceConfig struct {
	Enabled bool
	Timeout time.Duration `validate:"gt=0"`
}

// ResponderConfig tunes response assembly.
type ResponderConfig struct {
	IncludeFollowUp bool
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	cfg := Config{
		Port:         envconfig.Get("PORT", "8080"),
		GCPProjectID: envconfig.Get("GCP_PROJECT_ID", ""),
		Session: SessionConfig{
			Backend:      strings.ToLower(envconfig.Get("SESSION_BACKEND", SessionBackendMemory)),
			EmulatorHost: envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
		},
		Translate: TranslateConfig{
			APIKey:  envconfig.Get("TRANSLATE_API_KEY", ""),
			Timeout: parseDurationFallback(envconfig.Get("EXTERNAL_CALL_TIMEOUT", "5s"), 5*time.Second),
		},
		Voice: VoiceConfig{
			Enabled: parseBool(envconfig.Get("VOICE_ENABLED", "false")),
			Timeout: parseDurationFallback(envconfig.Get("VOICE_CALL_TIMEOUT", "15s"), 15*time.Second),
		},
		Responder: ResponderConfig{
			IncludeFollowUp: parseBool(envconfig.Get("RESPONDER_FOLLOW_UP", "true")),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if err := envconfig.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Session.Backend == SessionBackendFirestore && cfg.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT_ID is required when SESSION_BACKEND=firestore")
	}
	return nil
}

func parseDurationFallback(raw string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
