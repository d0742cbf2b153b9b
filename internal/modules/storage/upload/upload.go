// Package upload implements the shared file store behind artist images and
// content files. Files are persisted under collision-resistant generated
// names and referenced by URL path strings stored on the owning rows.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix uploaded files are served from.
const URLPrefix = "/uploads"

// Store writes and removes files in the shared upload directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the local upload directory path.
func (s *Store) Dir() string { return s.dir }

// Save persists an uploaded file under a generated name and returns its
// public URL path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	name := buildFileName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return URLPrefix + "/" + name, nil
}

// Remove deletes the file behind a stored URL reference. Removal is
// best-effort: callers treat the returned error as advisory only.
func (s *Store) Remove(fileURL string) error {
	path, ok := s.pathFromURL(fileURL)
	if !ok {
		return fmt.Errorf("unrecognized file url %q", fileURL)
	}
	return os.Remove(path)
}

// Exists reports whether the file behind a stored URL reference is present.
func (s *Store) Exists(fileURL string) bool {
	path, ok := s.pathFromURL(fileURL)
	if !ok {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) pathFromURL(fileURL string) (string, bool) {
	name := safeName(filepath.Base(strings.TrimSpace(fileURL)))
	if name == "" {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

// buildFileName generates a collision-resistant filename that preserves the
// original extension.
func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 || !isSafeSegment(ext[1:]) {
		ext = ".dat"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:18] + ext
}

// safeName returns raw only when it is a plain file name with no path
// tricks.
func safeName(raw string) string {
	if raw == "" || raw == "." || raw == ".." || raw == string(filepath.Separator) {
		return ""
	}
	if !isSafeSegment(raw) {
		return ""
	}
	return raw
}

func isSafeSegment(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return s != ""
}
