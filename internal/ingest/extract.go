package ingest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"resumerank/internal/errors"
	"resumerank/internal/types"

	"github.com/google/uuid"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions lists the resume file types that can be ingested.
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".md", ".markdown"}

// IsSupportedFile reports whether the path has a supported resume extension.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Extractor extracts plain text from resume files.
type Extractor struct {
	logger *errors.Logger
}

// NewExtractor creates a new text extractor.
func NewExtractor(logger *errors.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText extracts the text content of a single resume file.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".md", ".markdown":
		return e.extractPlainText(path)
	case ".docx":
		return e.extractDocx(path)
	case ".pdf":
		return e.extractPDF(ctx, path)
	default:
		return "", errors.NewValidationError(
			errors.ErrCodeUnsupportedFileType,
			fmt.Sprintf("unsupported file type: %s", ext),
			nil,
		).WithContext("path", path)
	}
}

func (e *Extractor) extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(
			errors.ErrCodeFileNotReadable,
			fmt.Sprintf("cannot read file: %s", path),
			err,
		)
	}
	return string(data), nil
}

func (e *Extractor) extractDocx(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", errors.NewIOError(
			errors.ErrCodeExtractionFailed,
			fmt.Sprintf("cannot open docx file: %s", path),
			err,
		)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	return flattenDocxXML(content), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTags         = regexp.MustCompile(`<[^>]+>`)
)

// flattenDocxXML turns document.xml content into plain text. Paragraph
// boundaries become newlines so line-oriented heuristics still work.
func flattenDocxXML(content string) string {
	text := docxParagraphEnd.ReplaceAllString(content, "\n")
	text = docxTags.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (string, error) {
	bin, err := exec.LookPath("pdftotext")
	if err != nil {
		return "", errors.NewIOError(
			errors.ErrCodeExtractionFailed,
			"PDF extraction backend unavailable: pdftotext not found in PATH",
			err,
		)
	}

	// "-" writes the extracted text to stdout.
	cmd := exec.CommandContext(ctx, bin, "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.NewIOError(
			errors.ErrCodeExtractionFailed,
			fmt.Sprintf("pdftotext failed for: %s", path),
			err,
		)
	}

	return string(output), nil
}

// IngestFiles extracts text from each file and produces candidates. A
// file that fails extraction still yields a candidate with empty text
// and an explanatory note, so one bad file never aborts a batch.
func (e *Extractor) IngestFiles(ctx context.Context, paths []string) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(paths))

	for _, path := range paths {
		filename := filepath.Base(path)
		name := strings.TrimSuffix(filename, filepath.Ext(filename))

		candidate := types.Candidate{
			ID:       uuid.NewString(),
			Name:     name,
			Filename: filename,
		}

		text, err := e.ExtractText(ctx, path)
		if err != nil {
			if e.logger != nil {
				e.logger.LogError(err, "Text extraction failed", "file", filename)
			}
			candidate.Note = fmt.Sprintf("extraction failed: %v", err)
		} else if strings.TrimSpace(text) == "" {
			candidate.Note = "no text content extracted"
		} else {
			candidate.RawText = text
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}
