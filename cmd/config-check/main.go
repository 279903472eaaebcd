package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/janm-comcon/stdtext/internal/config"
)

// Loads the resolved configuration from the environment (and .env, if
// present) and reports whether the server could start with it. Useful
// before a deploy: it checks the artifact files on disk without
// actually loading them.
func main() {
	fmt.Println("=== Configuration Check ===")
	fmt.Println("")

	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env file")
		fmt.Println("")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration loaded")
	fmt.Println("")

	fmt.Println("Server:")
	fmt.Printf("  Port: %s\n", cfg.Port)
	fmt.Printf("  Log level: %s\n", cfg.LogLevel)
	fmt.Println("")

	fmt.Println("Artifacts:")
	checkFile("Corpus index", cfg.CorpusIndexPath, true)
	checkFile("Dictionary", cfg.DictionaryPath, false)
	checkFile("Abbreviations", cfg.AbbreviationsPath, true)
	checkFile("Gazetteer", cfg.GazetteerPath, true)
	checkFile("Rules", cfg.RulesPath, false)
	fmt.Println("")

	fmt.Println("Pipeline:")
	if len(cfg.CountUnits) > 0 {
		fmt.Printf("  Count units: %s\n", strings.Join(cfg.CountUnits, ", "))
	} else {
		fmt.Printf("  Count units: [built-in defaults]\n")
	}
	fmt.Printf("  Uppercase output: %v\n", cfg.UppercaseOutput)
	fmt.Println("")

	fmt.Println("Spelling:")
	fmt.Printf("  Max edit distance: %d\n", cfg.SpellMaxEditDistance)
	fmt.Printf("  Cache size: %d\n", cfg.SpellCacheSize)
	fmt.Println("")

	fmt.Println("Style matching:")
	fmt.Printf("  Default top K: %d\n", cfg.DefaultTopK)
	fmt.Printf("  Max top K: %d\n", cfg.MaxTopK)
	fmt.Println("")

	fmt.Println("Polish pass:")
	if cfg.Polish.Enabled() {
		fmt.Printf("  API key: [set]\n")
		fmt.Printf("  Base URL: %s\n", cfg.Polish.BaseURL)
		fmt.Printf("  Model: %s\n", cfg.Polish.Model)
		fmt.Printf("  Timeout: %v\n", cfg.Polish.Timeout)
		fmt.Printf("  Requests per second: %.1f\n", cfg.Polish.RequestsPerSecond)
	} else {
		fmt.Printf("  Disabled (POLISH_API_KEY not set)\n")
	}
	fmt.Println("")

	fmt.Println("=== Check complete ===")
}

// checkFile prints whether the artifact file exists. Required files
// print a warning when missing; optional files just report their state.
func checkFile(label, path string, required bool) {
	if path == "" {
		fmt.Printf("  %s: [not configured]\n", label)
		return
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		fmt.Printf("  %s: %s (%d bytes)\n", label, path, info.Size())
	case required:
		fmt.Printf("  %s: %s  WARNING: file not found\n", label, path)
	default:
		fmt.Printf("  %s: %s (missing, optional)\n", label, path)
	}
}
