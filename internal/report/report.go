// Package report renders analysis results as JSON, Markdown, or standalone
// HTML documents.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

// Report bundles an analysis result with the input it was produced for.
type Report struct {
	Input  *painpoint.Input
	Output *engine.Output
}

// Write renders the report in the given format.
func Write(w io.Writer, r *Report, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON, "":
		return writeJSON(w, r)
	case config.FormatMarkdown:
		return writeMarkdown(w, r)
	case config.FormatHTML:
		return writeHTML(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// FormatForPath picks an output format from a file extension, defaulting to
// JSON for unknown extensions.
func FormatForPath(path string) config.OutputFormat {
	switch {
	case strings.HasSuffix(path, ".md"), strings.HasSuffix(path, ".markdown"):
		return config.FormatMarkdown
	case strings.HasSuffix(path, ".html"), strings.HasSuffix(path, ".htm"):
		return config.FormatHTML
	default:
		return config.FormatJSON
	}
}
