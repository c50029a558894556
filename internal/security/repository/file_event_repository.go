// Package repository provides the append-only sinks for security events.
package repository

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/allisson/authgate/internal/errors"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// FileEventRepository appends events as text lines to a single file. One mutex serializes
// appends so concurrent writers never interleave partial lines.
type FileEventRepository struct {
	mu   sync.Mutex
	path string
}

// Create appends event as one "timestamp - message" line.
func (f *FileEventRepository) Create(ctx context.Context, event *securityDomain.SecurityEvent) error {
	line := sanitizeLine(event.Line()) + "\n"

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return apperrors.Wrap(err, "failed to open security log")
	}

	if _, err := file.WriteString(line); err != nil {
		_ = file.Close()
		return apperrors.Wrap(err, "failed to append security event")
	}

	if err := file.Close(); err != nil {
		return apperrors.Wrap(err, "failed to close security log")
	}
	return nil
}

// ListLines returns recorded lines in append order. A missing file yields no lines.
// A limit of zero returns every line from offset on.
func (f *FileEventRepository) ListLines(ctx context.Context, offset, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open security log")
	}
	defer func() {
		_ = file.Close()
	}()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	index := 0
	for scanner.Scan() {
		if index >= offset && (limit == 0 || len(lines) < limit) {
			lines = append(lines, scanner.Text())
		}
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read security log")
	}

	return lines, nil
}

// DeleteOlderThan rewrites the file without lines stamped before olderThan. Lines whose
// timestamp cannot be parsed are kept. With dryRun the file is left untouched.
func (f *FileEventRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read security log")
	}

	var kept strings.Builder
	var count int64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if stamp, ok := lineTime(line); ok && stamp.Before(olderThan) {
			count++
			continue
		}
		kept.WriteString(line)
		kept.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return 0, apperrors.Wrap(err, "failed to read security log")
	}

	if dryRun || count == 0 {
		return count, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".security_logs-*")
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to create temporary security log")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(kept.String()); err != nil {
		_ = tmp.Close()
		return 0, apperrors.Wrap(err, "failed to write temporary security log")
	}
	if err := tmp.Close(); err != nil {
		return 0, apperrors.Wrap(err, "failed to close temporary security log")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return 0, apperrors.Wrap(err, "failed to replace security log")
	}

	return count, nil
}

// lineTime parses the timestamp prefix of a log line.
func lineTime(line string) (time.Time, bool) {
	layout := securityDomain.LineTimeLayout
	if len(line) < len(layout) {
		return time.Time{}, false
	}
	stamp, err := time.ParseInLocation(layout, line[:len(layout)], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return stamp, true
}

// sanitizeLine keeps a source identifier containing line breaks from forging extra entries.
func sanitizeLine(line string) string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(line)
}

// NewFileEventRepository creates a file sink at path. The file is created on first append.
func NewFileEventRepository(path string) *FileEventRepository {
	return &FileEventRepository{path: path}
}
