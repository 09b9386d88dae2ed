package service

import (
	"context"
	"io"
)

// FileStore persists uploaded binary assets and returns the public path they
// will be served from.
type FileStore interface {
	// Save writes file under dir with a generated collision-resistant name
	// (prefix + millisecond timestamp + sanitized original name) and returns
	// the public path "/<dir>/<name>". Existing files are never removed.
	Save(ctx context.Context, file io.Reader, dir, prefix, originalName string) (string, error)

	// SaveAs writes file under dir with exactly the given name, overwriting
	// any previous content. Used for the latest-wins CV alias.
	SaveAs(ctx context.Context, file io.Reader, dir, name string) (string, error)
}
