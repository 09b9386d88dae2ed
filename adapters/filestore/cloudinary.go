package filestore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"portfolio/internal/application/service"
	"portfolio/internal/config"
)

// cloudinaryStore keeps the naming contract of the local driver (prefix +
// timestamp + sanitized name) but returns the CDN URL instead of a local
// public path.
type cloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cfg config.Config) (service.FileStore, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name is not configured")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	return &cloudinaryStore{cld: cld}, nil
}

func (s *cloudinaryStore) Save(ctx context.Context, file io.Reader, dir, prefix, originalName string) (string, error) {
	publicID := strings.TrimSuffix(generateName(prefix, originalName), extension(originalName))
	return s.upload(ctx, file, dir, publicID)
}

func (s *cloudinaryStore) SaveAs(ctx context.Context, file io.Reader, dir, name string) (string, error) {
	return s.upload(ctx, file, dir, strings.TrimSuffix(name, extension(name)))
}

func (s *cloudinaryStore) upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	overwrite := true
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  publicID,
		Folder:    folder,
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

func extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
