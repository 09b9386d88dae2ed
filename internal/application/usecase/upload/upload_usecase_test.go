package upload

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type recordingStore struct {
	names []string
}

func (s *recordingStore) Save(_ context.Context, file io.Reader, dir, prefix, originalName string) (string, error) {
	io.Copy(io.Discard, file)
	name := prefix + originalName
	s.names = append(s.names, name)
	return "/" + dir + "/" + name, nil
}

func (s *recordingStore) SaveAs(_ context.Context, file io.Reader, dir, name string) (string, error) {
	io.Copy(io.Discard, file)
	s.names = append(s.names, name)
	return "/" + dir + "/" + name, nil
}

func TestUploadCV_WritesTimestampedFileThenAlias(t *testing.T) {
	store := &recordingStore{}
	uc := NewUploadUseCase(store, logger.NewNop())

	out, err := uc.UploadCV(context.Background(), CVInput{
		File:        strings.NewReader("%PDF-1.7"),
		Filename:    "resume.pdf",
		Size:        8,
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^cv-\d+\.pdf$`, out.Filename)
	assert.Equal(t, "/cv/"+out.Filename, out.Path)
	assert.Equal(t, "/cv/your-cv.pdf", out.MainPath)

	// Alias written second so it always holds the same payload as the
	// timestamped file.
	require.Len(t, store.names, 2)
	assert.Equal(t, out.Filename, store.names[0])
	assert.Equal(t, "your-cv.pdf", store.names[1])
}

func TestUploadCV_RejectsNonPDF(t *testing.T) {
	uc := NewUploadUseCase(&recordingStore{}, logger.NewNop())

	_, err := uc.UploadCV(context.Background(), CVInput{
		File:        strings.NewReader("plain"),
		Filename:    "resume.txt",
		Size:        5,
		ContentType: "text/plain",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUploadCV_RejectsOversize(t *testing.T) {
	store := &recordingStore{}
	uc := NewUploadUseCase(store, logger.NewNop())

	_, err := uc.UploadCV(context.Background(), CVInput{
		File:        strings.NewReader("x"),
		Filename:    "big.pdf",
		Size:        maxCVSize + 1,
		ContentType: "application/pdf",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, store.names, "nothing may be written for a rejected upload")
}
