package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
	lineHeight  float64
}

// namingFlags holds output file naming flags.
type namingFlags struct {
	pattern      string
	combine      bool
	combinedName string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	page    pageFlags
	naming  namingFlags
	quality int

	// set records flags given explicitly, so zero values can still
	// override the config file.
	set map[string]bool
}

// extractFlags holds all flags for the extract command.
type extractFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and a summary table")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal, tabloid")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "text margin in points")
	fs.Float64Var(&f.lineHeight, "line-height", 0, "line height in points")
}

// addNamingFlags adds output naming flags to a FlagSet.
func addNamingFlags(fs *flag.FlagSet, f *namingFlags) {
	fs.StringVarP(&f.pattern, "name-pattern", "n", "", "output name pattern with {name} and {num}")
	fs.BoolVar(&f.combine, "combine", false, "merge all files into one PDF per source type")
	fs.StringVar(&f.combinedName, "combined-name", "", "base name of the combined PDF")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{set: make(map[string]bool)}

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addNamingFlags(fs, &f.naming)
	fs.IntVar(&f.quality, "quality", 0, "JPEG quality for embedded images (1-100)")

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string, stderr io.Writer) (*extractFlags, []string, error) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &extractFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printExtractUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
