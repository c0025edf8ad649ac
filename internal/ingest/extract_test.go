package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"resume.pdf", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.md", true},
		{"resume.markdown", true},
		{"resume.PDF", true},
		{"resume.doc", false},
		{"resume.rtf", false},
		{"resume", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFile(tt.path); got != tt.want {
			t.Errorf("IsSupportedFile(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}

func TestExtractText(t *testing.T) {
	extractor := NewExtractor(nil)
	ctx := context.Background()

	t.Run("plain text file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.txt")
		content := "Senior Python Engineer. 6 years building distributed systems."
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := extractor.ExtractText(ctx, path)
		if err != nil {
			t.Fatalf("ExtractText() error = %v", err)
		}
		if got != content {
			t.Errorf("ExtractText() = %q, want %q", got, content)
		}
	})

	t.Run("markdown file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.md")
		if err := os.WriteFile(path, []byte("# Resume\n\nJunior developer"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := extractor.ExtractText(ctx, path)
		if err != nil {
			t.Fatalf("ExtractText() error = %v", err)
		}
		if !strings.Contains(got, "Junior developer") {
			t.Errorf("ExtractText() = %q, want content preserved", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := extractor.ExtractText(ctx, filepath.Join(t.TempDir(), "missing.txt"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.rtf")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := extractor.ExtractText(ctx, path)
		if err == nil {
			t.Fatal("expected error for unsupported extension")
		}
	})
}

func TestFlattenDocxXML(t *testing.T) {
	xml := `<w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p><w:p><w:r><w:t>6 years experience</w:t></w:r></w:p>`
	got := flattenDocxXML(xml)
	want := "Senior Engineer\n6 years experience"
	if got != want {
		t.Errorf("flattenDocxXML() = %q, want %q", got, want)
	}
}

func TestIngestFiles(t *testing.T) {
	extractor := NewExtractor(nil)
	ctx := context.Background()

	t.Run("mixed success and failure", func(t *testing.T) {
		dir := t.TempDir()
		good := filepath.Join(dir, "alice.txt")
		if err := os.WriteFile(good, []byte("Senior engineer"), 0644); err != nil {
			t.Fatal(err)
		}
		missing := filepath.Join(dir, "bob.txt")

		candidates := extractor.IngestFiles(ctx, []string{good, missing})
		if len(candidates) != 2 {
			t.Fatalf("got %d candidates, want 2", len(candidates))
		}

		if candidates[0].Name != "alice" || candidates[0].Filename != "alice.txt" {
			t.Errorf("candidate[0] = %+v", candidates[0])
		}
		if candidates[0].RawText != "Senior engineer" || candidates[0].Note != "" {
			t.Errorf("candidate[0] text/note = %q / %q", candidates[0].RawText, candidates[0].Note)
		}

		// The failed file still produces a candidate, flagged by note.
		if candidates[1].Name != "bob" {
			t.Errorf("candidate[1].Name = %q, want bob", candidates[1].Name)
		}
		if candidates[1].RawText != "" || candidates[1].Note == "" {
			t.Errorf("candidate[1] should have empty text and a note, got %q / %q",
				candidates[1].RawText, candidates[1].Note)
		}
	})

	t.Run("empty file gets a note", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, []byte("   \n"), 0644); err != nil {
			t.Fatal(err)
		}

		candidates := extractor.IngestFiles(ctx, []string{path})
		if candidates[0].Note != "no text content extracted" {
			t.Errorf("Note = %q", candidates[0].Note)
		}
	})

	t.Run("unique ids assigned", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.txt")
		b := filepath.Join(dir, "b.txt")
		for _, p := range []string{a, b} {
			if err := os.WriteFile(p, []byte("text here"), 0644); err != nil {
				t.Fatal(err)
			}
		}

		candidates := extractor.IngestFiles(ctx, []string{a, b})
		if candidates[0].ID == "" || candidates[0].ID == candidates[1].ID {
			t.Errorf("ids not unique: %q, %q", candidates[0].ID, candidates[1].ID)
		}
	})
}
