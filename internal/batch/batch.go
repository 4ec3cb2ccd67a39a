// Package batch analyzes a directory of pain-point JSON files in one run,
// writing a result file next to each input.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
	"github.com/filumlabs/painpoint-agent/internal/progress"
	"github.com/filumlabs/painpoint-agent/internal/report"
)

// Options controls a batch run.
type Options struct {
	RootDir    string              // Directory to scan for pain-point files.
	Include    []string            // Glob patterns; only matching files are analyzed.
	Exclude    []string            // Glob patterns; matching files are skipped.
	Format     config.OutputFormat // Result format; result extension follows it.
	MaxResults int
	Reporter   progress.Reporter
}

// FileResult records the outcome for one input file.
type FileResult struct {
	Path       string // Input path relative to the root.
	OutputPath string // Written result path, empty on failure.
	Err        error
}

// Summary is the outcome of a whole batch run.
type Summary struct {
	Results []FileResult
	Failed  int
}

// resultSuffix marks generated result files so later runs skip them.
const resultSuffix = ".result"

// Run discovers pain-point files under opts.RootDir and analyzes each one.
// Per-file failures are recorded in the summary, not returned: one malformed
// input must not abort the rest of the batch.
func Run(eng *engine.Engine, opts Options) (*Summary, error) {
	root, err := filepath.Abs(opts.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving batch root: %w", err)
	}

	paths, err := discover(root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.NewReporter()
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = engine.DefaultMaxSolutions
	}

	summary := &Summary{}
	reporter.Start(len(paths))
	for i, relPath := range paths {
		reporter.Update(i+1, relPath)

		outPath, err := analyzeFile(eng, root, relPath, opts.Format, maxResults)
		result := FileResult{Path: relPath, OutputPath: outPath, Err: err}
		if err != nil {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}
	reporter.Finish()

	return summary, nil
}

// discover lists pain-point input files under root, relative paths sorted by
// WalkDir order.
func discover(root string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = config.DefaultBatchIncludes
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if strings.Contains(relPath, resultSuffix+".") {
			return nil
		}
		if !matchesAny(relPath, include) || matchesAny(relPath, exclude) {
			return nil
		}

		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return paths, nil
}

func analyzeFile(eng *engine.Engine, root, relPath string, format config.OutputFormat, maxResults int) (string, error) {
	in, err := painpoint.Load(filepath.Join(root, relPath))
	if err != nil {
		return "", err
	}

	out, err := eng.Analyze(in, maxResults)
	if err != nil {
		return "", err
	}

	outPath := resultPath(relPath, format)
	f, err := os.Create(filepath.Join(root, outPath))
	if err != nil {
		return "", fmt.Errorf("creating result file: %w", err)
	}
	defer f.Close()

	if err := report.Write(f, &report.Report{Input: in, Output: out}, format); err != nil {
		return "", err
	}
	return outPath, nil
}

// resultPath derives the output filename: input.json -> input.result.json,
// with the extension following the report format.
func resultPath(relPath string, format config.OutputFormat) string {
	base := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	ext := ".json"
	switch format {
	case config.FormatMarkdown:
		ext = ".md"
	case config.FormatHTML:
		ext = ".html"
	}
	return base + resultSuffix + ext
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support; a pattern is also tried against the
// bare filename.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
