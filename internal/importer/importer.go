package importer

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"goaltracker/internal/domain"
)

// DetectFormat picks an import format from a file name's extension.
func DetectFormat(filename string) (domain.ImportFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return domain.FormatCSV, nil
	case ".txt":
		return domain.FormatText, nil
	default:
		return "", fmt.Errorf("%w: please use CSV or TXT files", domain.ErrUnsupportedFormat)
	}
}

// Import reads a whole uploaded file and dispatches on its extension. It never
// returns an error: unreadable or unsupported input comes back as a result with
// a single error and no records.
func Import(filename string, r io.Reader, opts Options) domain.ImportResult {
	opts = opts.withDefaults()
	format, err := DetectFormat(filename)
	if err != nil {
		return failed(domain.FormatCSV, err)
	}

	content, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return failed(format, fmt.Errorf("read %s: %w", filepath.Base(filename), err))
	}
	if int64(len(content)) > opts.MaxBytes {
		return failed(format, fmt.Errorf("%s exceeds the %d byte import limit", filepath.Base(filename), opts.MaxBytes))
	}

	if format == domain.FormatText {
		return ImportText(string(content), opts)
	}
	return ImportCSV(bytes.NewReader(content), opts)
}

func failed(format domain.ImportFormat, err error) domain.ImportResult {
	return domain.ImportResult{Format: format, Errors: []string{err.Error()}}
}
