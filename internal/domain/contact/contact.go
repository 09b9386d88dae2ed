package contact

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Submission is create-only: the public form writes it, the admin list reads
// it. No update or delete path exists.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Replied   bool      `json:"replied"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrMissingFields  = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("please provide a valid email address")
	ErrMessageTooLong = errors.New("message cannot exceed 2000 characters")

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func (s *Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !emailRegex.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	if len(s.Message) > 2000 {
		return ErrMessageTooLong
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Submission) error
	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*Submission, error)
}
