package importer

import (
	"strings"

	"goaltracker/internal/domain"
)

// ImportText parses newline-delimited free text. Blank lines are dropped
// before numbering, so error line numbers count non-blank lines only.
func ImportText(content string, opts Options) domain.ImportResult {
	opts = opts.withDefaults()
	result := domain.ImportResult{Format: domain.FormatText}

	lineNo := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo++
		donation, err := ParseLine(line, lineNo, opts)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Records = append(result.Records, donation)
	}
	return result
}
