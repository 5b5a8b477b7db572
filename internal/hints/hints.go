// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when available, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), ".config/go-doc2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or pass --output")
}

// ForDecode returns hints for unreadable source files.
func ForDecode(supported []string) string {
	if len(supported) == 0 {
		return format("check the file is not truncated or corrupt")
	}
	return format("supported inputs: " + strings.Join(supported, ", "))
}

// ForPageSize returns hints for unknown page sizes.
func ForPageSize(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInterrupted returns hints for jobs left in the queue at shutdown.
func ForInterrupted(pending int) string {
	if pending <= 0 {
		return ""
	}
	return format("re-run the same command to convert the remaining files")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
