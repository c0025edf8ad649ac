package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumerank/internal/export"
	"resumerank/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Ranking", &RankingTextFormatter{})
	registry.RegisterFormatter("markdown", "Ranking", &RankingMarkdownFormatter{})
	registry.RegisterFormatter("csv", "Ranking", &RankingCSVFormatter{})
	registry.RegisterFormatter("text", "Candidates", &CandidateTextFormatter{})
	registry.RegisterFormatter("markdown", "Candidates", &CandidateMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case []types.ScoredCandidate:
		return "Ranking"
	case []types.Candidate:
		return "Candidates"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// RankingTextFormatter handles text formatting for ranked results
type RankingTextFormatter struct{}

func (rtf *RankingTextFormatter) Format(data any) (string, error) {
	results, ok := data.([]types.ScoredCandidate)
	if !ok {
		return "", fmt.Errorf("expected []ScoredCandidate, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE RANKING ===\n\n")
	if len(results) == 0 {
		output.WriteString("No candidates scored.\n")
		return output.String(), nil
	}

	for i, result := range results {
		output.WriteString(fmt.Sprintf("%d. %s", i+1, result.Name))
		if result.Filename != "" {
			output.WriteString(fmt.Sprintf(" (%s)", result.Filename))
		}
		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("   Overall: %d/100\n", result.Scores.Overall))
		output.WriteString(fmt.Sprintf("   Skill Match: %d/100\n", result.Scores.SkillMatch))
		output.WriteString(fmt.Sprintf("   Experience: %d years\n", result.Scores.Years))
		output.WriteString(fmt.Sprintf("   Seniority: %s\n", result.Scores.Seniority))
		if len(result.Scores.TopSkills) > 0 {
			output.WriteString("   Top Skills: ")
			output.WriteString(strings.Join(result.Scores.TopSkills, ", "))
			output.WriteString("\n")
		}
		if result.Note != "" {
			output.WriteString("   Note: ")
			output.WriteString(result.Note)
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *RankingTextFormatter) SupportedType() string {
	return "Ranking"
}

// RankingMarkdownFormatter handles markdown formatting for ranked results
type RankingMarkdownFormatter struct{}

func (rmf *RankingMarkdownFormatter) Format(data any) (string, error) {
	results, ok := data.([]types.ScoredCandidate)
	if !ok {
		return "", fmt.Errorf("expected []ScoredCandidate, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Candidate Ranking\n\n")
	if len(results) == 0 {
		output.WriteString("No candidates scored.\n")
		return output.String(), nil
	}

	output.WriteString("| Rank | Name | Overall | Skill Match | Experience | Seniority |\n")
	output.WriteString("|------|------|---------|-------------|------------|-----------|\n")
	for i, result := range results {
		output.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d yrs | %s |\n",
			i+1, result.Name, result.Scores.Overall, result.Scores.SkillMatch,
			result.Scores.Years, result.Scores.Seniority))
	}
	output.WriteString("\n")

	for i, result := range results {
		output.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, result.Name))
		if result.Filename != "" {
			output.WriteString(fmt.Sprintf("**File:** %s\n\n", result.Filename))
		}
		if len(result.Scores.TopSkills) > 0 {
			output.WriteString("**Top Skills:** ")
			output.WriteString(strings.Join(result.Scores.TopSkills, ", "))
			output.WriteString("\n\n")
		}
		if result.Note != "" {
			output.WriteString("**Note:** ")
			output.WriteString(result.Note)
			output.WriteString("\n\n")
		}
	}

	return output.String(), nil
}

func (rmf *RankingMarkdownFormatter) SupportedType() string {
	return "Ranking"
}

// RankingCSVFormatter handles CSV formatting for ranked results
type RankingCSVFormatter struct{}

func (rcf *RankingCSVFormatter) Format(data any) (string, error) {
	results, ok := data.([]types.ScoredCandidate)
	if !ok {
		return "", fmt.Errorf("expected []ScoredCandidate, got %T", data)
	}
	return export.CSVString(results, 0), nil
}

func (rcf *RankingCSVFormatter) SupportedType() string {
	return "Ranking"
}

// CandidateTextFormatter handles text formatting for parsed candidates
type CandidateTextFormatter struct{}

func (ctf *CandidateTextFormatter) Format(data any) (string, error) {
	candidates, ok := data.([]types.Candidate)
	if !ok {
		return "", fmt.Errorf("expected []Candidate, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED CANDIDATES ===\n\n")
	if len(candidates) == 0 {
		output.WriteString("No candidates parsed.\n")
		return output.String(), nil
	}

	for i, candidate := range candidates {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidate.Name))
		output.WriteString(fmt.Sprintf("   ID: %s\n", candidate.ID))
		output.WriteString(fmt.Sprintf("   File: %s\n", candidate.Filename))
		output.WriteString(fmt.Sprintf("   Text: %d bytes\n", len(candidate.RawText)))
		if candidate.Note != "" {
			output.WriteString("   Note: ")
			output.WriteString(candidate.Note)
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ctf *CandidateTextFormatter) SupportedType() string {
	return "Candidates"
}

// CandidateMarkdownFormatter handles markdown formatting for parsed candidates
type CandidateMarkdownFormatter struct{}

func (cmf *CandidateMarkdownFormatter) Format(data any) (string, error) {
	candidates, ok := data.([]types.Candidate)
	if !ok {
		return "", fmt.Errorf("expected []Candidate, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Candidates\n\n")
	if len(candidates) == 0 {
		output.WriteString("No candidates parsed.\n")
		return output.String(), nil
	}

	output.WriteString("| # | Name | File | Text Size |\n")
	output.WriteString("|---|------|------|-----------|\n")
	for i, candidate := range candidates {
		output.WriteString(fmt.Sprintf("| %d | %s | %s | %d bytes |\n",
			i+1, candidate.Name, candidate.Filename, len(candidate.RawText)))
	}
	output.WriteString("\n")

	for _, candidate := range candidates {
		if candidate.Note != "" {
			output.WriteString(fmt.Sprintf("**%s:** %s\n\n", candidate.Name, candidate.Note))
		}
	}

	return output.String(), nil
}

func (cmf *CandidateMarkdownFormatter) SupportedType() string {
	return "Candidates"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
