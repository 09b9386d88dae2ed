package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"portfolio/internal/application/service"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

const (
	cvDir         = "cv"
	cvAlias       = "your-cv.pdf"
	maxCVSize     = 10 << 20
	maxCVSizeText = "File size must be less than 10MB"
)

// UploadUseCase handles the standalone CV upload. The CV always goes through
// the local driver so the fixed-name alias stays a stable download link.
type UploadUseCase struct {
	files  service.FileStore
	logger logger.Logger
}

func NewUploadUseCase(files service.FileStore, log logger.Logger) *UploadUseCase {
	return &UploadUseCase{files: files, logger: log}
}

type CVInput struct {
	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
}

type CVOutput struct {
	Filename string
	Path     string
	MainPath string
}

func (uc *UploadUseCase) UploadCV(ctx context.Context, in CVInput) (*CVOutput, error) {
	if !strings.Contains(in.ContentType, "pdf") {
		return nil, apperror.NewInvalidInput("Only PDF files are allowed", nil)
	}
	if in.Size > maxCVSize {
		return nil, apperror.NewInvalidInput(maxCVSizeText, nil)
	}

	// Buffer once so the same payload can be written under both names.
	data, err := io.ReadAll(io.LimitReader(in.File, maxCVSize+1))
	if err != nil {
		return nil, apperror.NewInternal("failed to read CV payload", err)
	}
	if int64(len(data)) > maxCVSize {
		return nil, apperror.NewInvalidInput(maxCVSizeText, nil)
	}

	filename := fmt.Sprintf("cv-%d.pdf", time.Now().UnixMilli())
	path, err := uc.files.SaveAs(ctx, bytes.NewReader(data), cvDir, filename)
	if err != nil {
		return nil, apperror.NewInternal("failed to store CV", err)
	}

	// Latest-wins alias: the stable download link always points at the most
	// recent upload.
	mainPath, err := uc.files.SaveAs(ctx, bytes.NewReader(data), cvDir, cvAlias)
	if err != nil {
		return nil, apperror.NewInternal("failed to store CV alias", err)
	}

	return &CVOutput{Filename: filename, Path: path, MainPath: mainPath}, nil
}
