// Package storage persists uploaded files on the local disk and serves
// their public paths.
package storage

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"nnrgconnect/internal/middleware"
	"nnrgconnect/internal/observability"

	"github.com/google/uuid"
)

const (
	KindIDCard     = "id_card"
	KindProfilePic = "profile_pic"
	KindResume     = "resume"
)

var kindDirs = map[string]string{
	KindIDCard:     "id_cards",
	KindProfilePic: "profile-pics",
	KindResume:     "resumes",
}

// Store writes uploads under a single root directory, one subdirectory
// per file kind.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory the store writes under.
func (s *Store) Root() string {
	return s.root
}

// Save writes content to disk under the kind's subdirectory and returns
// the public path ("/uploads/...") clients use to fetch it. The stored
// filename is a fresh UUID so uploads never collide.
func (s *Store) Save(kind, originalFilename string, content []byte) (string, error) {
	dir, ok := kindDirs[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}

	name := uuid.NewString() + sanitizeExt(originalFilename)
	abs := filepath.Join(s.root, dir, name)
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, content, 0o600); err != nil {
		return "", err
	}

	observability.UploadsStored.WithLabelValues(kind).Inc()
	return "/uploads/" + dir + "/" + name, nil
}

// Delete removes a previously stored file given its public path. Missing
// files are not an error; the caller treats deletion as best effort.
func (s *Store) Delete(publicPath string) error {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok {
		return fmt.Errorf("not an upload path: %s", publicPath)
	}

	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	cleanRoot := filepath.Clean(s.root) + string(filepath.Separator)
	if !strings.HasPrefix(filepath.Clean(abs), cleanRoot) {
		return fmt.Errorf("path escapes upload root: %s", publicPath)
	}

	err := os.Remove(abs)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeleteQuietly deletes a stored file and only logs on failure.
func (s *Store) DeleteQuietly(publicPath string) {
	if publicPath == "" {
		return
	}
	if err := s.Delete(publicPath); err != nil {
		middleware.Logger.Warn("Failed to delete stored file",
			"path", publicPath,
			"error", err.Error(),
		)
	}
}

// DetectContentType sniffs the real media type of an upload, preferring
// the bytes over the client-declared header.
func DetectContentType(content []byte) string {
	return normalizeContentType(http.DetectContentType(content))
}

// IsAllowedImageType reports whether the detected content type is an
// image format we accept for ID cards and profile pictures.
func IsAllowedImageType(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

// IsPDF reports whether the detected content type is a PDF document.
func IsPDF(contentType string) bool {
	return normalizeContentType(contentType) == "application/pdf"
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf":
		return ext
	default:
		return ""
	}
}
