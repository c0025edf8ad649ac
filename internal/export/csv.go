// Package export renders scored candidates for output: CSV files and
// persistence payloads for a remote endpoint.
package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"resumerank/internal/errors"
	"resumerank/internal/types"
)

var csvColumns = []string{"Name", "Filename", "Skill Match", "Experience (yrs)", "Seniority", "Overall"}

// CSVString renders the candidates as CSV. Every field is quoted and
// embedded quotes are doubled. Candidates with an overall score below
// minScore are omitted. No trailing newline is emitted.
func CSVString(scored []types.ScoredCandidate, minScore int) string {
	lines := make([]string, 0, len(scored)+1)
	lines = append(lines, renderRow(csvColumns))

	for _, c := range scored {
		if c.Scores.Overall < minScore {
			continue
		}
		lines = append(lines, renderRow([]string{
			c.Name,
			c.Filename,
			strconv.Itoa(c.Scores.SkillMatch),
			strconv.Itoa(c.Scores.Years),
			string(c.Scores.Seniority),
			strconv.Itoa(c.Scores.Overall),
		}))
	}

	return strings.Join(lines, "\n")
}

func renderRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f)
	}
	return strings.Join(quoted, ",")
}

func quoteField(f string) string {
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

// WriteCSV writes the rendered CSV to a file.
func WriteCSV(path string, scored []types.ScoredCandidate, minScore int) error {
	content := CSVString(scored, minScore)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewIOError(
			errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to write CSV file: %s", path),
			err,
		)
	}
	return nil
}
