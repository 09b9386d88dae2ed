package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/application/service"
	"portfolio/internal/domain/experience"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

const imagePrefix = "experience-"

type ExperienceUseCase struct {
	repo   experience.Repository
	files  service.FileStore
	logger logger.Logger
}

func NewExperienceUseCase(repo experience.Repository, files service.FileStore, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: repo, files: files, logger: log}
}

type CreateInput struct {
	Title        string
	Company      string
	Duration     string
	Location     string
	Description  string
	Technologies []string
	Current      bool
	StartDate    *time.Time
	EndDate      *time.Time
	ImageURL     *string
	Image        *service.Upload
}

func (uc *ExperienceUseCase) Create(ctx context.Context, in CreateInput) (*experience.Experience, error) {
	now := time.Now().UTC()
	start := now
	if in.StartDate != nil {
		start = in.StartDate.UTC()
	}
	e := &experience.Experience{
		ID:           uuid.New(),
		Title:        in.Title,
		Company:      in.Company,
		Duration:     in.Duration,
		Location:     in.Location,
		Description:  in.Description,
		Technologies: in.Technologies,
		Current:      in.Current,
		StartDate:    start,
		EndDate:      in.EndDate,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.Image != nil {
		path, err := uc.files.Save(ctx, in.Image.File, "uploads", imagePrefix, in.Image.Filename)
		if err != nil {
			return nil, apperror.NewInternal("failed to store experience image", err)
		}
		e.ImageURL = &path
	}

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type UpdateInput struct {
	ID           uuid.UUID
	Title        *string
	Company      *string
	Duration     *string
	Location     *string
	Description  *string
	Technologies []string
	Current      *bool
	StartDate    *time.Time
	EndDate      *time.Time
	ImageURL     *string
	Image        *service.Upload
}

func (uc *ExperienceUseCase) Update(ctx context.Context, in UpdateInput) (*experience.Experience, error) {
	e, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Company != nil {
		e.Company = *in.Company
	}
	if in.Duration != nil {
		e.Duration = *in.Duration
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Technologies != nil {
		e.Technologies = in.Technologies
	}
	if in.StartDate != nil {
		utc := in.StartDate.UTC()
		e.StartDate = utc
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.ImageURL != nil {
		e.ImageURL = in.ImageURL
	}
	if in.Current != nil {
		e.Current = *in.Current
		// Marking the record current unsets any stored end date instead of
		// leaving it stale next to current=true.
		if e.Current {
			e.EndDate = nil
		}
	}

	if in.Image != nil {
		path, err := uc.files.Save(ctx, in.Image.File, "uploads", imagePrefix, in.Image.Filename)
		if err != nil {
			return nil, apperror.NewInternal("failed to store experience image", err)
		}
		e.ImageURL = &path
	}
	e.UpdatedAt = time.Now().UTC()

	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *ExperienceUseCase) List(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.List(ctx)
}
