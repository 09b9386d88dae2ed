package http

import (
	"portfolio/internal/domain/profile"
	"portfolio/pkg/forms"
)

// Request bodies are explicit per-operation structs; gin's binding tags give
// the cheap handler-level 400 before the store-level validation runs.
// Responses marshal the domain documents directly.

// Profile

type UpdateProfileRequest struct {
	Name      *string         `json:"name"`
	Title     *string         `json:"title"`
	Email     *string         `json:"email" binding:"omitempty,email"`
	Phone     *string         `json:"phone"`
	Location  *string         `json:"location"`
	Bio       *string         `json:"bio" binding:"omitempty,max=500"`
	Skills    *profile.Skills `json:"skills"`
	Social    *profile.Social `json:"social"`
	Stats     *profile.Stats  `json:"stats"`
	CVURL     *string         `json:"cvUrl"`
	AvatarURL *string         `json:"avatarUrl"`
}

// Project

type CreateProjectRequest struct {
	Title           string           `json:"title" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	FullDescription string           `json:"fullDescription" binding:"required"`
	Technologies    forms.StringList `json:"technologies" binding:"required,min=1"`
	GithubURL       string           `json:"githubUrl" binding:"required"`
	LiveURL         string           `json:"liveUrl" binding:"required"`
	ImageURL        *string          `json:"imageUrl"`
	Category        string           `json:"category"`
	Featured        bool             `json:"featured"`
}

type UpdateProjectRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	FullDescription *string          `json:"fullDescription"`
	Technologies    forms.StringList `json:"technologies"`
	GithubURL       *string          `json:"githubUrl"`
	LiveURL         *string          `json:"liveUrl"`
	ImageURL        *string          `json:"imageUrl"`
	Category        *string          `json:"category"`
	Featured        *bool            `json:"featured"`
}

// Experience. Dates arrive as strings ("2006-01-02" or RFC3339) from both the
// JSON and multipart paths and are parsed with forms.ParseDate.

type CreateExperienceRequest struct {
	Title        string           `json:"title" binding:"required"`
	Company      string           `json:"company" binding:"required"`
	Duration     string           `json:"duration" binding:"required"`
	Location     string           `json:"location" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	Technologies forms.StringList `json:"technologies" binding:"required,min=1"`
	Current      bool             `json:"current"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	ImageURL     *string          `json:"imageUrl"`
}

type UpdateExperienceRequest struct {
	Title        *string          `json:"title"`
	Company      *string          `json:"company"`
	Duration     *string          `json:"duration"`
	Location     *string          `json:"location"`
	Description  *string          `json:"description"`
	Technologies forms.StringList `json:"technologies"`
	Current      *bool            `json:"current"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	ImageURL     *string          `json:"imageUrl"`
}

// Blog

type CreateBlogRequest struct {
	Title       string           `json:"title" binding:"required"`
	Slug        string           `json:"slug"`
	Excerpt     string           `json:"excerpt" binding:"required"`
	Content     string           `json:"content" binding:"required"`
	Author      string           `json:"author" binding:"required"`
	AuthorRole  string           `json:"authorRole" binding:"required"`
	AuthorImage *string          `json:"authorImage"`
	CoverImage  *string          `json:"coverImage"`
	Category    string           `json:"category" binding:"required"`
	Tags        forms.StringList `json:"tags" binding:"required,min=1"`
	Featured    bool             `json:"featured"`
	PublishedAt string           `json:"publishedAt"`
	ReadingTime *int             `json:"readingTime"`
}

type UpdateBlogRequest struct {
	Title       *string          `json:"title"`
	Slug        *string          `json:"slug"`
	Excerpt     *string          `json:"excerpt"`
	Content     *string          `json:"content"`
	Author      *string          `json:"author"`
	AuthorRole  *string          `json:"authorRole"`
	AuthorImage *string          `json:"authorImage"`
	CoverImage  *string          `json:"coverImage"`
	Category    *string          `json:"category"`
	Tags        forms.StringList `json:"tags"`
	Featured    *bool            `json:"featured"`
	PublishedAt string           `json:"publishedAt"`
	ReadingTime *int             `json:"readingTime"`
}

// Contact

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,max=2000"`
}
