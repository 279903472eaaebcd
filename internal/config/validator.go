package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.CorpusIndexPath == "" {
		errors = append(errors, "corpus index path is required")
	}
	if c.GazetteerPath == "" {
		errors = append(errors, "gazetteer path is required")
	}
	if c.AbbreviationsPath == "" {
		errors = append(errors, "abbreviations path is required")
	}
	// DictionaryPath may be empty: the spell checker then falls back to
	// corpus word frequencies.

	if c.SpellMaxEditDistance < 1 || c.SpellMaxEditDistance > 3 {
		errors = append(errors, fmt.Sprintf("spell max edit distance must be between 1 and 3, got %d", c.SpellMaxEditDistance))
	}
	if c.SpellCacheSize < 1 {
		errors = append(errors, "spell cache size must be at least 1")
	}

	if c.DefaultTopK < 1 {
		errors = append(errors, "default top K must be at least 1")
	}
	if c.MaxTopK < c.DefaultTopK {
		errors = append(errors, "max top K cannot be smaller than default top K")
	}

	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if c.Polish != nil {
		if err := c.Polish.Validate(); err != nil {
			errors = append(errors, fmt.Sprintf("polish config: %v", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Validate checks the polish pass configuration. Fields are only
// enforced when the pass is enabled.
func (pc *PolishConfig) Validate() error {
	if !pc.Enabled() {
		return nil
	}

	var errors []string

	if pc.Model == "" {
		errors = append(errors, "model is required")
	}
	if pc.Timeout < time.Second {
		errors = append(errors, "timeout must be at least 1 second")
	}
	if pc.RequestsPerSecond <= 0 {
		errors = append(errors, "requests per second must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("polish validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults returns a configuration with default values.
func GetDefaults() *Config {
	return &Config{
		Port:                 "8080",
		CorpusIndexPath:      "artifacts/corpus_index.json",
		DictionaryPath:       "artifacts/dictionary.txt",
		AbbreviationsPath:    "artifacts/abbreviations.json",
		GazetteerPath:        "artifacts/gazetteer.txt",
		RulesPath:            "artifacts/rules.yaml",
		UppercaseOutput:      true,
		SpellMaxEditDistance: 2,
		SpellCacheSize:       4096,
		DefaultTopK:          5,
		MaxTopK:              50,
		LogLevel:             "INFO",
		Polish:               &PolishConfig{BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini", Timeout: 5 * time.Second, RequestsPerSecond: 2},
	}
}
