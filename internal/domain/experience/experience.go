package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Duration     string     `json:"duration"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	Current      bool       `json:"current"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	ImageURL     *string    `json:"imageUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

var (
	ErrMissingFields  = errors.New("title, company, duration, location, description and technologies are required")
	ErrNoTechnologies = errors.New("at least one technology must be specified")
	ErrEndDateSet     = errors.New("end date must be empty while this is the current position")
	ErrEndDateMissing = errors.New("end date is required for a past position")
	ErrEndBeforeStart = errors.New("end date must be after start date")
)

// Validate enforces the current/endDate invariant: a current position carries
// no end date, a past position carries one strictly after the start date.
func (e *Experience) Validate() error {
	if e.Title == "" || e.Company == "" || e.Duration == "" || e.Location == "" || e.Description == "" {
		return ErrMissingFields
	}
	if len(e.Technologies) == 0 {
		return ErrNoTechnologies
	}
	if e.Current {
		if e.EndDate != nil {
			return ErrEndDateSet
		}
		return nil
	}
	if e.EndDate == nil {
		return ErrEndDateMissing
	}
	if !e.EndDate.After(e.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	// Update replaces the stored row, including setting end_date to NULL when
	// the entity carries none.
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) (*Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	// List returns all experiences, newest start date first.
	List(ctx context.Context) ([]*Experience, error)
	DeleteAll(ctx context.Context) error
}
