package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert images, EPUB and Markdown files to PDF")
	fmt.Fprintln(w, "  extract    Write EPUB metadata and chapters to JSON")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'doc2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2pdf convert [flags] <file|dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert images, EPUB books and Markdown files to PDF.")
	fmt.Fprintln(w, "Directories are searched recursively.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default ~/Documents)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -n, --name-pattern <s>    Output name pattern: {name}, {num}")
	fmt.Fprintln(w, "      --combine             One PDF for all images, one for all documents")
	fmt.Fprintln(w, "      --combined-name <s>   Base name of the combined PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal, tabloid")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Text margin in points (default 50)")
	fmt.Fprintln(w, "      --line-height <f>     Line height in points (default 14)")
	fmt.Fprintln(w, "      --quality <n>         JPEG quality for images (1-100, default 95)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and a summary table")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOC2PDF_CONFIG, DOC2PDF_OUTPUT_DIR, DOC2PDF_PAGE_SIZE,")
	fmt.Fprintln(w, "  DOC2PDF_NAMING_PATTERN, DOC2PDF_IMAGE_QUALITY")
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2pdf extract [flags] <file|dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write each EPUB's title, author and chapter text to <name>.json.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default ~/Documents)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and a summary table")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "extract":
		printExtractUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: doc2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: doc2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
