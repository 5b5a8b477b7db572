package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-doc2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath    string // DOC2PDF_CONFIG: config file name or path
	OutputDir     string // DOC2PDF_OUTPUT_DIR: output directory
	PageSize      string // DOC2PDF_PAGE_SIZE: letter, a4, legal, tabloid
	NamingPattern string // DOC2PDF_NAMING_PATTERN: {name}_{num} style pattern
	ImageQuality  int    // DOC2PDF_IMAGE_QUALITY: JPEG quality 1-100
}

// knownEnvVars lists valid DOC2PDF_* environment variables.
var knownEnvVars = map[string]bool{
	"DOC2PDF_CONFIG":         true,
	"DOC2PDF_OUTPUT_DIR":     true,
	"DOC2PDF_PAGE_SIZE":      true,
	"DOC2PDF_NAMING_PATTERN": true,
	"DOC2PDF_IMAGE_QUALITY":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:    os.Getenv("DOC2PDF_CONFIG"),
		OutputDir:     os.Getenv("DOC2PDF_OUTPUT_DIR"),
		PageSize:      os.Getenv("DOC2PDF_PAGE_SIZE"),
		NamingPattern: os.Getenv("DOC2PDF_NAMING_PATTERN"),
	}

	if quality := os.Getenv("DOC2PDF_IMAGE_QUALITY"); quality != "" {
		if q, err := strconv.Atoi(quality); err == nil && q > 0 && q <= config.MaxImageQuality {
			cfg.ImageQuality = q
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized DOC2PDF_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DOC2PDF_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig copies set environment values over the config file values.
// Flags are merged afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.NamingPattern != "" {
		cfg.Output.NamingPattern = env.NamingPattern
	}
	if env.ImageQuality > 0 {
		cfg.Image.Quality = env.ImageQuality
	}
}
