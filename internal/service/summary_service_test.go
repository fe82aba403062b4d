package service

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"summary/internal/domain"
	"summary/internal/language"
	"summary/internal/summarizer"
)

const spot = "See Spot. See Spot run. Run Spot, run!"

func newService(t *testing.T) *SummaryService {
	t.Helper()
	engine, err := summarizer.New(language.English)
	if err != nil {
		t.Fatal(err)
	}
	return NewSummaryService(engine)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "Second.")
	writeFile(t, dir, "a.txt", "First.")
	plain := writeFile(t, dir, "c.md", "Third.")

	svc := newService(t)
	docs, err := svc.LoadDocuments([]string{filepath.Join(dir, "*.txt"), plain})
	if err != nil {
		t.Fatalf("LoadDocuments() error = %v", err)
	}
	var got []string
	for _, d := range docs {
		got = append(got, d.Content)
		if d.ID == "" {
			t.Errorf("document %s has no ID", d.Path)
		}
	}
	if want := []string{"First.", "Second.", "Third."}; !slices.Equal(got, want) {
		t.Errorf("contents = %q, want %q", got, want)
	}
}

func TestLoadDocuments_Errors(t *testing.T) {
	svc := newService(t)
	if _, err := svc.LoadDocuments(nil); err == nil {
		t.Error("LoadDocuments(nil) error = nil")
	}
	_, err := svc.LoadDocuments([]string{filepath.Join(t.TempDir(), "[a-")})
	if !errors.Is(err, filepath.ErrBadPattern) {
		t.Errorf("LoadDocuments(bad pattern) error = %v, want ErrBadPattern", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, err := svc.LoadDocuments([]string{missing}); err == nil {
		t.Error("LoadDocuments(missing) error = nil")
	}
}

func TestReadDocument(t *testing.T) {
	doc, err := newService(t).ReadDocument("-", strings.NewReader(spot))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Path != "-" || doc.Content != spot {
		t.Errorf("ReadDocument() = %+v", doc)
	}
}

func TestSummarize(t *testing.T) {
	svc := newService(t)
	doc := domain.Document{Path: "spot.txt", Content: spot}

	got, err := svc.Summarize(doc, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"See Spot run.", "Run Spot, run!"}; !slices.Equal(got, want) {
		t.Errorf("Summarize() = %q, want %q", got, want)
	}

	_, err = svc.Summarize(doc, 0)
	if !errors.Is(err, domain.ErrInvalidSummaryLength) {
		t.Errorf("Summarize(0) error = %v, want ErrInvalidSummaryLength", err)
	}
	if err != nil && !strings.Contains(err.Error(), "spot.txt") {
		t.Errorf("error %q does not name the document", err)
	}

	if _, err := svc.SummarizeRatio(doc, 2); !errors.Is(err, domain.ErrInvalidRatio) {
		t.Errorf("SummarizeRatio(2) error = %v, want ErrInvalidRatio", err)
	}
}

func TestHighlights(t *testing.T) {
	svc := newService(t)
	hl, err := svc.Highlights(domain.Document{Content: spot}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(hl) != 3 {
		t.Fatalf("Highlights() = %d sentences, want 3", len(hl))
	}
	var selected []bool
	for _, h := range hl {
		selected = append(selected, h.Selected)
	}
	if want := []bool{false, false, true}; !slices.Equal(selected, want) {
		t.Errorf("selected = %v, want %v", selected, want)
	}
}

func TestSetEngine(t *testing.T) {
	svc := newService(t)
	svc.SetEngine(summarizer.NewLanguageAgnostic())
	got, err := svc.Summarize(domain.Document{Content: "The the the. A cat."}, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Without stop words the repeated "the" dominates.
	if want := []string{"The the the."}; !slices.Equal(got, want) {
		t.Errorf("Summarize() = %q, want %q", got, want)
	}
}
