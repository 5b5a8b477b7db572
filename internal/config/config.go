package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-doc2pdf/internal/fileutil"
	"github.com/alnah/go-doc2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldInvalid    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxPatternLength     = 200  // "{name}_{num}" and friends
	MaxFileNameLength    = 200  // Combined output base name
	MaxPageSizeLength    = 10   // "letter", "a4", "legal", "tabloid"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxMarginPoints      = 216  // 3 inches
	MaxLineHeightPoints  = 144  // 2 inches
	MaxImageQuality      = 100
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-doc2pdf"

// DefaultOutputDir mirrors where desktop users expect converted files.
const DefaultOutputDir = "~/Documents"

// DefaultCombinedName is the base name of combined output files.
const DefaultCombinedName = "combined_document"

// Config holds all configuration for document conversion.
type Config struct {
	Output  OutputConfig `yaml:"output"`
	Page    PageConfig   `yaml:"page"`
	Image   ImageConfig  `yaml:"image"`
	Combine bool         `yaml:"combine"` // Merge all selected files into one PDF per source type
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir           string `yaml:"dir"`           // "~" is expanded (default: ~/Documents)
	NamingPattern string `yaml:"namingPattern"` // {name} and {num} placeholders (empty = source name)
	CombinedName  string `yaml:"combinedName"`  // Base name for combined output (default: combined_document)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal", "tabloid" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // points (0 = default 50)
	LineHeight  float64 `yaml:"lineHeight"`  // points (0 = default 14)
}

// ImageConfig defines image embedding options.
type ImageConfig struct {
	Quality int `yaml:"quality"` // JPEG quality 1-100 (0 = default)
}

// Validate checks field lengths and numeric ranges.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand (flags, environment).
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.namingPattern", c.Output.NamingPattern, MaxPatternLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.combinedName", c.Output.CombinedName, MaxFileNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Output.NamingPattern, "/\\\x00") {
		return fmt.Errorf("%w: output.namingPattern must not contain path separators", ErrFieldInvalid)
	}
	if strings.ContainsAny(c.Output.CombinedName, "/\\\x00") {
		return fmt.Errorf("%w: output.combinedName must not contain path separators", ErrFieldInvalid)
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Margin < 0 || c.Page.Margin > MaxMarginPoints {
		return fmt.Errorf("%w: page.margin must be between 0 and %d, got %.2f", ErrFieldInvalid, MaxMarginPoints, c.Page.Margin)
	}
	if c.Page.LineHeight < 0 || c.Page.LineHeight > MaxLineHeightPoints {
		return fmt.Errorf("%w: page.lineHeight must be between 0 and %d, got %.2f", ErrFieldInvalid, MaxLineHeightPoints, c.Page.LineHeight)
	}

	if c.Image.Quality < 0 || c.Image.Quality > MaxImageQuality {
		return fmt.Errorf("%w: image.quality must be between 0 and %d, got %d", ErrFieldInvalid, MaxImageQuality, c.Image.Quality)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:          DefaultOutputDir,
			CombinedName: DefaultCombinedName,
		},
		Page: PageConfig{
			Size:        "letter",
			Orientation: "portrait",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
