package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/application/service"
	"portfolio/internal/domain/blog"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

const (
	coverPrefix  = "blog-cover-"
	authorPrefix = "author-"
)

type BlogUseCase struct {
	repo   blog.Repository
	files  service.FileStore
	logger logger.Logger
}

func NewBlogUseCase(repo blog.Repository, files service.FileStore, log logger.Logger) *BlogUseCase {
	return &BlogUseCase{repo: repo, files: files, logger: log}
}

type CreateInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Author      string
	AuthorRole  string
	AuthorImage *string
	CoverImage  *string
	Category    string
	Tags        []string
	Featured    bool
	PublishedAt *time.Time
	ReadingTime *int
	// CoverUpload and AuthorUpload map to independent fields; each generated
	// path overrides only its own URL field.
	CoverUpload  *service.Upload
	AuthorUpload *service.Upload
}

func (uc *BlogUseCase) Create(ctx context.Context, in CreateInput) (*blog.Blog, error) {
	now := time.Now().UTC()
	b := &blog.Blog{
		ID:          uuid.New(),
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Author:      in.Author,
		AuthorRole:  in.AuthorRole,
		AuthorImage: in.AuthorImage,
		CoverImage:  in.CoverImage,
		Category:    in.Category,
		Tags:        in.Tags,
		Featured:    in.Featured,
		PublishedAt: now,
		ReadingTime: blog.DefaultReadingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.Slug == "" {
		b.Slug = blog.Slugify(in.Title)
	}
	if in.PublishedAt != nil {
		b.PublishedAt = in.PublishedAt.UTC()
	}
	if in.ReadingTime != nil {
		b.ReadingTime = *in.ReadingTime
	}

	if err := uc.storeImages(ctx, b, in.CoverUpload, in.AuthorUpload); err != nil {
		return nil, err
	}

	if err := b.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

type UpdateInput struct {
	ID           uuid.UUID
	Title        *string
	Slug         *string
	Excerpt      *string
	Content      *string
	Author       *string
	AuthorRole   *string
	AuthorImage  *string
	CoverImage   *string
	Category     *string
	Tags         []string
	Featured     *bool
	PublishedAt  *time.Time
	ReadingTime  *int
	CoverUpload  *service.Upload
	AuthorUpload *service.Upload
}

func (uc *BlogUseCase) Update(ctx context.Context, in UpdateInput) (*blog.Blog, error) {
	b, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Slug != nil {
		b.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		b.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		b.Content = *in.Content
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.AuthorRole != nil {
		b.AuthorRole = *in.AuthorRole
	}
	if in.AuthorImage != nil {
		b.AuthorImage = in.AuthorImage
	}
	if in.CoverImage != nil {
		b.CoverImage = in.CoverImage
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.Tags != nil {
		b.Tags = in.Tags
	}
	if in.Featured != nil {
		b.Featured = *in.Featured
	}
	if in.PublishedAt != nil {
		b.PublishedAt = in.PublishedAt.UTC()
	}
	if in.ReadingTime != nil {
		b.ReadingTime = *in.ReadingTime
	}

	if err := uc.storeImages(ctx, b, in.CoverUpload, in.AuthorUpload); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now().UTC()

	if err := b.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BlogUseCase) storeImages(ctx context.Context, b *blog.Blog, cover, author *service.Upload) error {
	if cover != nil {
		path, err := uc.files.Save(ctx, cover.File, "uploads", coverPrefix, cover.Filename)
		if err != nil {
			return apperror.NewInternal("failed to store cover image", err)
		}
		b.CoverImage = &path
	}
	if author != nil {
		path, err := uc.files.Save(ctx, author.File, "uploads", authorPrefix, author.Filename)
		if err != nil {
			return apperror.NewInternal("failed to store author image", err)
		}
		b.AuthorImage = &path
	}
	return nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *BlogUseCase) Get(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *BlogUseCase) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	return uc.repo.FindBySlug(ctx, slug)
}

func (uc *BlogUseCase) List(ctx context.Context) ([]*blog.Blog, error) {
	return uc.repo.List(ctx)
}
