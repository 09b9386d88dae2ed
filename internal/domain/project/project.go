package project

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Technologies    []string  `json:"technologies"`
	GithubURL       string    `json:"githubUrl"`
	LiveURL         string    `json:"liveUrl"`
	ImageURL        *string   `json:"imageUrl"`
	Category        string    `json:"category"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

const DefaultCategory = "Frontend"

var Categories = []string{"Frontend", "Backend", "Full Stack", "Mobile", "Desktop", "Other"}

var (
	ErrMissingFields      = errors.New("title, description, fullDescription, technologies, githubUrl and liveUrl are required")
	ErrNoTechnologies     = errors.New("at least one technology must be specified")
	ErrInvalidURL         = errors.New("please provide a valid URL")
	ErrInvalidCategory    = errors.New("category must be one of Frontend, Backend, Full Stack, Mobile, Desktop, Other")
	ErrTitleTooLong       = errors.New("title cannot exceed 100 characters")
	ErrDescriptionTooLong = errors.New("description cannot exceed 200 characters")
	ErrFullDescTooLong    = errors.New("full description cannot exceed 1000 characters")

	urlRegex = regexp.MustCompile(`^https?://.+`)
)

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func (p *Project) Validate() error {
	if p.Title == "" || p.Description == "" || p.FullDescription == "" || p.GithubURL == "" || p.LiveURL == "" {
		return ErrMissingFields
	}
	if len(p.Technologies) == 0 {
		return ErrNoTechnologies
	}
	if len(p.Title) > 100 {
		return ErrTitleTooLong
	}
	if len(p.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if len(p.FullDescription) > 1000 {
		return ErrFullDescTooLong
	}
	if !urlRegex.MatchString(p.GithubURL) || !urlRegex.MatchString(p.LiveURL) {
		return ErrInvalidURL
	}
	if !ValidCategory(p.Category) {
		return ErrInvalidCategory
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	// Delete returns the deleted document for confirmation.
	Delete(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// List returns all projects, newest created first.
	List(ctx context.Context) ([]*Project, error)
	DeleteAll(ctx context.Context) error
}
