package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	doc2pdf "github.com/alnah/go-doc2pdf"
)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	setMaxProcs(env, flags.common.verbose)
	return runConvert(ctx, positional, flags, env)
}

// runConvert discovers sources, commits them into jobs and drains the queue.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	cfg, err := resolveConfig(flags.common, mergeConvertFlags(flags), env.Stderr)
	if err != nil {
		return err
	}
	rc, err := renderConfig(cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(args, isConvertible)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	var batch doc2pdf.Batch
	batch.Add(files...)
	jobs, err := batch.Jobs(rc)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	logger.Debug("starting conversion", "files", batch.Len(), "jobs", len(jobs), "output", rc.OutputDir)

	conv := doc2pdf.NewConverter(doc2pdf.WithLogger(logger), doc2pdf.WithClock(env.Now))
	return runJobs(ctx, conv, jobs, logger, newReporter(env, flags.common))
}

// runExtractCmd parses extract flags and writes one JSON file per EPUB.
func runExtractCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExtractFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	setMaxProcs(env, flags.common.verbose)

	cfg, err := resolveConfig(flags.common, nil, env.Stderr)
	if err != nil {
		return err
	}
	rc, err := renderConfig(cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(positional, isEPUB)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	var batch doc2pdf.Batch
	batch.Add(files...)
	jobs, err := batch.ExtractJobs(rc)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	ext := doc2pdf.NewExtractor(doc2pdf.WithLogger(logger), doc2pdf.WithClock(env.Now))
	return runJobs(ctx, ext, jobs, logger, newReporter(env, flags.common))
}

// usageError marks flag parsing failures. --help passes through unchanged.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
