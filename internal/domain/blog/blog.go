package blog

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorRole  string    `json:"authorRole"`
	AuthorImage *string   `json:"authorImage"`
	CoverImage  *string   `json:"coverImage"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadingTime int       `json:"readingTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const DefaultReadingTime = 5

var (
	ErrMissingFields  = errors.New("title, excerpt, content, author, authorRole, category and tags are required")
	ErrNoTags         = errors.New("at least one tag is required")
	ErrTitleTooLong   = errors.New("title cannot exceed 200 characters")
	ErrExcerptTooLong = errors.New("excerpt cannot exceed 500 characters")

	nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumerics
// collapsed to single hyphens, leading/trailing hyphens trimmed.
func Slugify(title string) string {
	s := nonSlugRegex.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

func (b *Blog) Validate() error {
	if b.Title == "" || b.Excerpt == "" || b.Content == "" || b.Author == "" || b.AuthorRole == "" || b.Category == "" {
		return ErrMissingFields
	}
	if len(b.Tags) == 0 {
		return ErrNoTags
	}
	if len(b.Title) > 200 {
		return ErrTitleTooLong
	}
	if len(b.Excerpt) > 500 {
		return ErrExcerptTooLong
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, b *Blog) error
	Update(ctx context.Context, b *Blog) error
	Delete(ctx context.Context, id uuid.UUID) (*Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	FindBySlug(ctx context.Context, slug string) (*Blog, error)
	// List returns all posts, newest published first.
	List(ctx context.Context) ([]*Blog, error)
}
