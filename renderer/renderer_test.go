package renderer

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/etnz/registration"
	"github.com/google/go-cmp/cmp"
)

//go:embed testdata/*.json
var testcasesFS embed.FS

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixPartials = flag.Bool("fix-partials", false, "if true, update failing partial test case .md files with the received output")

func TestFixPartialsIsOff(t *testing.T) {
	if *fixPartials {
		t.Fatal("-fix-partials is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// readReport reads the shared dashboard header fixture.
func readReport(t *testing.T) *Report {
	t.Helper()
	jsonData, err := testcasesFS.ReadFile("testdata/report.json")
	if err != nil {
		t.Fatalf("failed to read struct file: %v", err)
	}
	r := &Report{}
	if err := json.Unmarshal(jsonData, r); err != nil {
		t.Fatalf("failed to unmarshal struct data: %v", err)
	}
	return r
}

// checkGolden compares got with the golden file, or rewrites it with -fix-partials.
func checkGolden(t *testing.T, goldenFile, got string) {
	t.Helper()
	goldenData, err := fs.ReadFile(testcasesGoldenFS, goldenFile)
	if err != nil {
		if os.IsNotExist(err) && *fixPartials {
			goldenData = []byte{}
		} else {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(goldenData)
	if got == want {
		return
	}
	if *fixPartials {
		if err := os.MkdirAll(filepath.Dir(goldenFile), 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
		}
		t.Logf("updated golden file %s", goldenFile)
		return
	}
	t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", goldenFile, createDiff(want, got))
}

func TestTemplatePartials(t *testing.T) {
	partials := []string{"report_title", "report_summary"}

	// every partial template must be tested
	files, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(f.Name(), ".md")
		if strings.HasPrefix(name, "report_") && !strings.Contains(strings.Join(partials, " "), name) {
			t.Errorf("untested template partial found: %s. Please add it to TestTemplatePartials.", f.Name())
		}
	}

	for _, name := range partials {
		t.Run(name, func(t *testing.T) {
			templateContent, err := fs.ReadFile(templates, name+".md")
			if err != nil {
				t.Fatalf("failed to read template file: %v", err)
			}
			tmpl, err := template.New(name).Parse(string(templateContent))
			if err != nil {
				t.Fatalf("failed to parse template: %v", err)
			}
			var b strings.Builder
			if err := tmpl.Execute(&b, readReport(t)); err != nil {
				t.Fatalf("failed to execute template: %v", err)
			}
			checkGolden(t, "testdata/"+name+".md", b.String())
		})
	}
}

func TestRenderReport(t *testing.T) {
	checkGolden(t, "testdata/report_assembly.md", RenderReport(readReport(t)))
}

func TestNewReport(t *testing.T) {
	ds, err := registration.NewDataset([]registration.Record{
		rec("2023-01-31", "4W", "Ford", 100),
		rec("2023-04-30", "4W", "Ford", 50),
		rec("2024-01-31", "2W", "Honda", 150),
		rec("2024-01-15", "4W", "Ford", 30),
	})
	if err != nil {
		t.Fatal(err)
	}
	got := NewReport("Vehicle Registrations", registration.NewReport(ds), registration.Filter{})
	if diff := cmp.Diff(readReport(t), got); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}
