package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/application/service"
	"portfolio/internal/domain/project"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

const imagePrefix = "project-"

type ProjectUseCase struct {
	repo   project.Repository
	files  service.FileStore
	logger logger.Logger
}

func NewProjectUseCase(repo project.Repository, files service.FileStore, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, files: files, logger: log}
}

type CreateInput struct {
	Title           string
	Description     string
	FullDescription string
	Technologies    []string
	GithubURL       string
	LiveURL         string
	ImageURL        *string
	Category        string
	Featured        bool
	// Image, when present, is persisted and its path overrides ImageURL.
	Image *service.Upload
}

func (uc *ProjectUseCase) Create(ctx context.Context, in CreateInput) (*project.Project, error) {
	now := time.Now().UTC()
	p := &project.Project{
		ID:              uuid.New(),
		Title:           in.Title,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Technologies:    in.Technologies,
		GithubURL:       in.GithubURL,
		LiveURL:         in.LiveURL,
		ImageURL:        in.ImageURL,
		Category:        in.Category,
		Featured:        in.Featured,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.Category == "" {
		p.Category = project.DefaultCategory
	}

	if in.Image != nil {
		path, err := uc.files.Save(ctx, in.Image.File, "uploads", imagePrefix, in.Image.Filename)
		if err != nil {
			return nil, apperror.NewInternal("failed to store project image", err)
		}
		p.ImageURL = &path
	}

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateInput struct {
	ID              uuid.UUID
	Title           *string
	Description     *string
	FullDescription *string
	Technologies    []string
	GithubURL       *string
	LiveURL         *string
	ImageURL        *string
	Category        *string
	Featured        *bool
	Image           *service.Upload
}

func (uc *ProjectUseCase) Update(ctx context.Context, in UpdateInput) (*project.Project, error) {
	p, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.FullDescription != nil {
		p.FullDescription = *in.FullDescription
	}
	if in.Technologies != nil {
		p.Technologies = in.Technologies
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	if in.Image != nil {
		path, err := uc.files.Save(ctx, in.Image.File, "uploads", imagePrefix, in.Image.Filename)
		if err != nil {
			return nil, apperror.NewInternal("failed to store project image", err)
		}
		p.ImageURL = &path
	}
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProjectUseCase) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ProjectUseCase) List(ctx context.Context) ([]*project.Project, error) {
	return uc.repo.List(ctx)
}
