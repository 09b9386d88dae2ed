// Package filestore provides the FileStore drivers: local disk (the default,
// and always used for CVs so the fixed-name alias stays a stable link) and
// Cloudinary for images when configured.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"portfolio/internal/application/service"
)

type localStore struct {
	// root is the public static directory; files land under root/<dir> and
	// are served from /<dir>/<name>.
	root string
}

func NewLocalStore(root string) service.FileStore {
	return &localStore{root: root}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Collision guard is the millisecond timestamp only; two same-named uploads
// within the same millisecond would collide. Known limitation, acceptable for
// a single-owner portfolio.
func generateName(prefix, originalName string) string {
	sanitized := unsafeChars.ReplaceAllString(originalName, "")
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), sanitized)
}

func (s *localStore) Save(ctx context.Context, file io.Reader, dir, prefix, originalName string) (string, error) {
	return s.write(file, dir, generateName(prefix, originalName))
}

func (s *localStore) SaveAs(ctx context.Context, file io.Reader, dir, name string) (string, error) {
	return s.write(file, dir, name)
}

func (s *localStore) write(file io.Reader, dir, name string) (string, error) {
	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory %s: %w", target, err)
	}

	out, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file %s: %w", name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("failed to write upload file %s: %w", name, err)
	}
	return "/" + dir + "/" + name, nil
}
