package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/pathfinder/internal/session"
)

// FileName returns the export file name for a summary, stamped with its
// completion time in UTC.
func FileName(sum session.Summary, f Format) string {
	at := sum.CompletedAt
	if at.IsZero() {
		at = time.Now()
	}
	return fmt.Sprintf("pathfinder-results-%s.%s", at.UTC().Format("20060102-150405"), f.Extension())
}

// WriteFile renders the summary into dir and returns the written path.
// The directory is created when missing; an existing file is overwritten.
func WriteFile(dir string, sum session.Summary, opts Options) (string, error) {
	if opts.Format == "" {
		opts.Format = FormatMarkdown
	}
	var buf bytes.Buffer
	if err := Render(&buf, sum, opts); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(sum, opts.Format))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
