package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/progress"
)

const validInput = `{"pain_point": {
	"description": "our support team is overwhelmed by repetitive tickets and slow response time",
	"context": {"industry": "retail", "urgency_level": "high"}
}}`

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	return engine.New(cat)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.json", validInput)
	writeFile(t, dir, "nested/second.json", validInput)
	writeFile(t, dir, "notes.txt", "not an input")

	summary, err := Run(testEngine(t), Options{
		RootDir:  dir,
		Reporter: progress.SilentReporter{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Results) != 2 {
		t.Fatalf("analyzed %d files, want 2", len(summary.Results))
	}
	if summary.Failed != 0 {
		t.Fatalf("%d failures: %+v", summary.Failed, summary.Results)
	}

	for _, r := range summary.Results {
		if r.OutputPath == "" {
			t.Errorf("%s: no output path", r.Path)
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, r.OutputPath)); err != nil {
			t.Errorf("result file %s: %v", r.OutputPath, err)
		}
	}
}

func TestRunRecordsPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", validInput)
	writeFile(t, dir, "bad.json", `{"pain_point": {"description": "short"}}`)
	writeFile(t, dir, "broken.json", `{not json`)

	summary, err := Run(testEngine(t), Options{
		RootDir:  dir,
		Reporter: progress.SilentReporter{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Results) != 3 {
		t.Fatalf("analyzed %d files, want 3", len(summary.Results))
	}
	if summary.Failed != 2 {
		t.Errorf("%d failures, want 2", summary.Failed)
	}

	for _, r := range summary.Results {
		if r.Path == "good.json" && r.Err != nil {
			t.Errorf("good.json failed: %v", r.Err)
		}
		if r.Path != "good.json" && r.Err == nil {
			t.Errorf("%s should have failed", r.Path)
		}
	}
}

func TestRunSkipsOwnResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "input.json", validInput)

	eng := testEngine(t)
	opts := Options{RootDir: dir, Reporter: progress.SilentReporter{}}

	if _, err := Run(eng, opts); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	summary, err := Run(eng, opts)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("second run analyzed %d files, want 1 (result files must be skipped)", len(summary.Results))
	}
}

func TestRunExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.json", validInput)
	writeFile(t, dir, "samples/skip.json", validInput)

	summary, err := Run(testEngine(t), Options{
		RootDir:  dir,
		Exclude:  []string{"samples/**"},
		Reporter: progress.SilentReporter{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 1 || summary.Results[0].Path != "keep.json" {
		t.Errorf("exclude pattern not honored: %+v", summary.Results)
	}
}

func TestRunMarkdownFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "input.json", validInput)

	summary, err := Run(testEngine(t), Options{
		RootDir:  dir,
		Format:   config.FormatMarkdown,
		Reporter: progress.SilentReporter{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("analyzed %d files, want 1", len(summary.Results))
	}
	if summary.Results[0].OutputPath != "input.result.md" {
		t.Errorf("output path = %q, want input.result.md", summary.Results[0].OutputPath)
	}
}
