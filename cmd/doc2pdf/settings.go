package main

import (
	"errors"
	"fmt"
	"io"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/config"
	"github.com/alnah/go-doc2pdf/internal/fileutil"
	"github.com/alnah/go-doc2pdf/internal/hints"
)

// resolveConfig builds the effective configuration:
// flags > environment > config file > defaults.
// apply merges command flags; it may be nil.
func resolveConfig(common commonFlags, apply func(*config.Config), stderr io.Writer) (*config.Config, error) {
	warnUnknownEnvVars(stderr)
	env := loadEnvConfig()

	name := common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg, err := loadConfig(name)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(env, cfg)
	if common.output != "" {
		cfg.Output.Dir = common.output
	}
	if apply != nil {
		apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeConvertFlags copies explicitly set convert flags into cfg.
func mergeConvertFlags(flags *convertFlags) func(*config.Config) {
	return func(cfg *config.Config) {
		if flags.set["page-size"] {
			cfg.Page.Size = flags.page.size
		}
		if flags.set["orientation"] {
			cfg.Page.Orientation = flags.page.orientation
		}
		if flags.set["margin"] {
			cfg.Page.Margin = flags.page.margin
		}
		if flags.set["line-height"] {
			cfg.Page.LineHeight = flags.page.lineHeight
		}
		if flags.set["quality"] {
			cfg.Image.Quality = flags.quality
		}
		if flags.set["name-pattern"] {
			cfg.Output.NamingPattern = flags.naming.pattern
		}
		if flags.set["combined-name"] {
			cfg.Output.CombinedName = flags.naming.combinedName
		}
		if flags.set["combine"] {
			cfg.Combine = flags.naming.combine
		}
	}
}

// renderConfig converts the file-level config into the snapshot attached
// to jobs. "~" in the output directory is expanded here.
func renderConfig(cfg *config.Config) (doc2pdf.RenderConfig, error) {
	size, err := doc2pdf.ParsePageSize(cfg.Page.Size)
	if err != nil {
		return doc2pdf.RenderConfig{}, fmt.Errorf("%w%s", err, hints.ForPageSize(doc2pdf.PageSizes()))
	}
	orientation, err := doc2pdf.ParseOrientation(cfg.Page.Orientation)
	if err != nil {
		return doc2pdf.RenderConfig{}, err
	}

	outDir, err := fileutil.ExpandHome(cfg.Output.Dir)
	if err != nil {
		return doc2pdf.RenderConfig{}, fmt.Errorf("%w: %v%s", doc2pdf.ErrCreateOutputDir, err, hints.ForOutputDirectory())
	}

	rc := doc2pdf.RenderConfig{
		PageSize:      size,
		Orientation:   orientation,
		OutputDir:     outDir,
		Combine:       cfg.Combine,
		CombinedName:  cfg.Output.CombinedName,
		NamingPattern: cfg.Output.NamingPattern,
		Margin:        cfg.Page.Margin,
		LineHeight:    cfg.Page.LineHeight,
		ImageQuality:  cfg.Image.Quality,
	}
	if err := rc.Validate(); err != nil {
		return doc2pdf.RenderConfig{}, err
	}
	return rc, nil
}
