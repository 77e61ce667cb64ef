package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExportDir writes export files into a local directory.
type ExportDir struct {
	basePath string
}

// NewExportDir creates basePath if needed and returns an ExportDir rooted there.
func NewExportDir(basePath string) (*ExportDir, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &ExportDir{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (d *ExportDir) BasePath() string {
	if d == nil {
		return ""
	}
	return d.basePath
}

// Create streams a file named name through write and returns its full path.
// The file is written to a temporary name first and renamed on success.
func (d *ExportDir) Create(ctx context.Context, name string, write func(io.Writer) error) (string, error) {
	if d == nil {
		return "", errors.New("storage: no export directory configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := sanitizeKey(name)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(d.basePath, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".export-*")
	if err != nil {
		return "", fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: write %s: %w", clean, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", clean, err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", fmt.Errorf("storage: rename %s: %w", clean, err)
	}
	return fullPath, nil
}

// sanitizeKey normalizes a relative name and prevents escaping the root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: file name is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.ToSlash(filepath.Clean(key))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid file name")
	}
	return cleaned, nil
}
