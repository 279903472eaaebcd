package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server
	Port string `json:"port"`

	// Artifact paths
	CorpusIndexPath   string `json:"corpus_index_path"`
	DictionaryPath    string `json:"dictionary_path"`
	AbbreviationsPath string `json:"abbreviations_path"`
	GazetteerPath     string `json:"gazetteer_path"`
	RulesPath         string `json:"rules_path"`

	// Pipeline
	CountUnits      []string `json:"count_units"`
	UppercaseOutput bool     `json:"uppercase_output"`

	// Spelling
	SpellMaxEditDistance int `json:"spell_max_edit_distance"`
	SpellCacheSize       int `json:"spell_cache_size"`

	// Style matching
	DefaultTopK int `json:"default_top_k"`
	MaxTopK     int `json:"max_top_k"`

	// Logging
	LogLevel string `json:"log_level"`

	// Optional LLM polish pass
	Polish *PolishConfig `json:"polish"`
}

// PolishConfig configures the optional LLM polish pass. The pass is
// disabled when APIKey is empty.
type PolishConfig struct {
	APIKey            string        `json:"api_key"`
	BaseURL           string        `json:"base_url"`
	Model             string        `json:"model"`
	Timeout           time.Duration `json:"timeout"`
	RequestsPerSecond float64       `json:"requests_per_second"`
}

// Enabled reports whether the polish pass should run.
func (pc *PolishConfig) Enabled() bool {
	return pc != nil && pc.APIKey != ""
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		// Server
		Port: getEnv("SERVER_PORT", "8080"),

		// Artifact paths
		CorpusIndexPath:   getEnv("CORPUS_INDEX_PATH", "artifacts/corpus_index.json"),
		DictionaryPath:    getEnv("DICTIONARY_PATH", "artifacts/dictionary.txt"),
		AbbreviationsPath: getEnv("ABBREVIATIONS_PATH", "artifacts/abbreviations.json"),
		GazetteerPath:     getEnv("GAZETTEER_PATH", "artifacts/gazetteer.txt"),
		RulesPath:         getEnv("RULES_PATH", "artifacts/rules.yaml"),

		// Pipeline
		CountUnits:      getEnvList("COUNT_UNITS", nil),
		UppercaseOutput: getEnvBool("UPPERCASE_OUTPUT", true),

		// Spelling
		SpellMaxEditDistance: getEnvInt("SPELL_MAX_EDIT_DISTANCE", 2),
		SpellCacheSize:       getEnvInt("SPELL_CACHE_SIZE", 4096),

		// Style matching
		DefaultTopK: getEnvInt("STYLE_DEFAULT_TOP_K", 5),
		MaxTopK:     getEnvInt("STYLE_MAX_TOP_K", 50),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Polish
		Polish: LoadPolishConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// LoadPolishConfig loads the polish pass configuration.
func LoadPolishConfig() *PolishConfig {
	return &PolishConfig{
		APIKey:            os.Getenv("POLISH_API_KEY"),
		BaseURL:           getEnv("POLISH_BASE_URL", "https://api.openai.com/v1"),
		Model:             getEnv("POLISH_MODEL", "gpt-4o-mini"),
		Timeout:           getEnvDuration("POLISH_TIMEOUT", 5*time.Second),
		RequestsPerSecond: getEnvFloat("POLISH_REQUESTS_PER_SEC", 2),
	}
}

// getEnv reads an environment variable, falling back to defaultValue.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as int, falling back to defaultValue.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as float64, falling back to defaultValue.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool reads an environment variable as bool, falling back to defaultValue.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as Duration, falling back to defaultValue.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList reads a comma-separated environment variable, falling back
// to defaultValue. Entries are trimmed; empty entries are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
