// Package config loads application configuration from environment variables.
package config

import (
	"os"
)

// Default endpoint and model identifiers. Overridable via environment for
// tests and self-hosted deployments.
const (
	defaultListenAddr   = "127.0.0.1:8080"
	defaultDBPath       = "zendegi.db"
	defaultInferenceURL = "https://api-inference.huggingface.co/models"
	defaultChatModel    = "meta-llama/Meta-Llama-3-8B-Instruct"
	defaultSTTModelFa   = "m3hrdadfi/wav2vec2-large-xlsr-persian"
	defaultSTTModelEn   = "facebook/wav2vec2-large-960h"
	defaultPrayerAPIURL = "http://api.aladhan.com/v1/timingsByCity"
)

// inferenceKeyNames are the environment variables checked, in order, for the
// inference API key. The first non-empty value wins. The multi-name lookup is
// deliberate: deployments have historically set the key under any of these.
var inferenceKeyNames = []string{"HUGGINGFACE_API_KEY", "XAI_API_KEY", "OPENAI_API_KEY"}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SupabaseURL  string
	SupabaseKey  string
	InferenceKey string
	InferenceURL string
	ChatModel    string
	STTModelFa   string
	STTModelEn   string
	PrayerAPIURL string
	ListenAddr   string
	DBPath       string
}

// HasSupabase returns true when both the backend URL and API key are set.
// When false the finance/health/calendar relays and sign-in stay disabled and
// report unavailability instead of failing at startup.
func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// HasInference returns true when an inference API key was resolved. When false
// the chat and transcription services answer with their unavailable signal.
func (c *Config) HasInference() bool {
	return c.InferenceKey != ""
}

// ResolveFirst returns the first non-empty value among the named environment
// variables, or ok=false when none is set.
func ResolveFirst(names ...string) (string, bool) {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v, true
		}
	}
	return "", false
}

// Load reads configuration from environment variables. All credentials are
// optional; absence never returns an error. Dependent services degrade to an
// unavailable state instead.
func Load() (*Config, error) {
	key, _ := ResolveFirst(inferenceKeyNames...)

	cfg := &Config{
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_KEY"),
		InferenceKey: key,
		InferenceURL: defaultInferenceURL,
		ChatModel:    defaultChatModel,
		STTModelFa:   defaultSTTModelFa,
		STTModelEn:   defaultSTTModelEn,
		PrayerAPIURL: defaultPrayerAPIURL,
		ListenAddr:   defaultListenAddr,
		DBPath:       defaultDBPath,
	}

	if v, ok := os.LookupEnv("ZENDEGI_INFERENCE_URL"); ok && v != "" {
		cfg.InferenceURL = v
	}
	if v, ok := os.LookupEnv("ZENDEGI_CHAT_MODEL"); ok && v != "" {
		cfg.ChatModel = v
	}
	if v, ok := os.LookupEnv("ZENDEGI_PRAYER_API_URL"); ok && v != "" {
		cfg.PrayerAPIURL = v
	}
	if v, ok := os.LookupEnv("ZENDEGI_LISTEN_ADDR"); ok && v != "" {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv("ZENDEGI_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}

	return cfg, nil
}
