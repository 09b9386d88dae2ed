package profile

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Profile is a singleton by convention: reads always target the document with
// IsActive set, and one is created lazily when none exists.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Skills    Skills    `json:"skills"`
	Social    Social    `json:"social"`
	Stats     Stats     `json:"stats"`
	CVURL     *string   `json:"cvUrl"`
	AvatarURL *string   `json:"avatarUrl"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Skills struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Tools    []string `json:"tools"`
	Other    []string `json:"other,omitempty"`
}

type Social struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Stats struct {
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
	Clients    string `json:"clients"`
	Quality    string `json:"quality"`
}

var (
	ErrMissingFields = errors.New("name, title, email, location and bio are required")
	ErrInvalidEmail  = errors.New("please provide a valid email address")
	ErrInvalidURL    = errors.New("please provide a valid URL")
	ErrBioTooLong    = errors.New("bio cannot exceed 500 characters")

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRegex   = regexp.MustCompile(`^https?://.+`)
)

func (p *Profile) Validate() error {
	if p.Name == "" || p.Title == "" || p.Email == "" || p.Location == "" || p.Bio == "" {
		return ErrMissingFields
	}
	if !emailRegex.MatchString(p.Email) {
		return ErrInvalidEmail
	}
	if len(p.Bio) > 500 {
		return ErrBioTooLong
	}
	for _, u := range []string{p.Social.LinkedIn, p.Social.GitHub, p.Social.Twitter, p.Social.Website} {
		if u != "" && !urlRegex.MatchString(u) {
			return ErrInvalidURL
		}
	}
	return nil
}

// Default returns the profile created on first read when none is stored yet.
func Default() *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:       uuid.New(),
		Name:     "Your Name",
		Title:    "Full Stack Developer",
		Email:    "your.email@example.com",
		Location: "Your City, Country",
		Bio:      "Passionate full-stack developer with expertise in modern web technologies.",
		Skills: Skills{
			Frontend: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "JavaScript", "HTML5"},
			Backend:  []string{"Node.js", "Express.js", "Python", "RESTful APIs", "GraphQL", "MongoDB"},
			Tools:    []string{"Git", "Docker", "AWS", "Figma", "VS Code", "Linux"},
		},
		Social: Social{
			LinkedIn: "https://linkedin.com/in/yourprofile",
			GitHub:   "https://github.com/yourusername",
			Twitter:  "https://twitter.com/yourusername",
		},
		Stats: Stats{
			Experience: "3+",
			Projects:   "50+",
			Clients:    "25+",
			Quality:    "100%",
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type Repository interface {
	// GetActive returns the active profile or a NotFound error.
	GetActive(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	DeleteAll(ctx context.Context) error
}
