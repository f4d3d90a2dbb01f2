// Package storage persists uploaded application documents on disk,
// one directory per user, files named by their sanitized original name.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyFilename is returned when nothing usable remains of a
// filename after sanitization.
var ErrEmptyFilename = errors.New("filename is empty after sanitization")

// DocumentStore writes and removes application documents under a
// configured root directory.
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a store rooted at dir, creating it if needed.
func NewDocumentStore(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root %s: %w", dir, err)
	}
	return &DocumentStore{root: dir}, nil
}

// Save writes the document for the given user and returns the
// sanitized filename that was recorded. A second upload with the same
// name overwrites the previous file.
func (s *DocumentStore) Save(userID int64, filename string, r io.Reader) (string, error) {
	safe := SanitizeFilename(filename)
	if safe == "" {
		return "", ErrEmptyFilename
	}

	dir := filepath.Join(s.root, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, safe))
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write document file: %w", err)
	}
	return safe, nil
}

// Remove deletes a stored document. A file that is already gone is not
// an error.
func (s *DocumentStore) Remove(userID int64, filename string) error {
	safe := SanitizeFilename(filename)
	if safe == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, fmt.Sprintf("%d", userID), safe))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove document file: %w", err)
	}
	return nil
}

// Path returns the on-disk location of a stored document.
func (s *DocumentStore) Path(userID int64, filename string) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", userID), SanitizeFilename(filename))
}

// Extension returns the lowercased extension of a filename without the
// leading dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// SanitizeFilename strips path components and collapses anything
// outside [A-Za-z0-9._-] so the result is safe to join under a user
// directory. Leading dots are dropped so the name can never be hidden
// or a traversal segment.
func SanitizeFilename(name string) string {
	// Normalize both separator styles before taking the base name.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._")
}
