package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/experience"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = "id, title, company, duration, location, description, technologies, current, start_date, end_date, image_url, created_at, updated_at"

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Company,
		&e.Duration,
		&e.Location,
		&e.Description,
		&e.Technologies,
		&e.Current,
		&e.StartDate,
		&e.EndDate,
		&e.ImageURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*experience.Experience, error) {
	defer rows.Close()
	experiences := make([]*experience.Experience, 0)

	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (id, title, company, duration, location, description, technologies, current, start_date, end_date, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Company, e.Duration, e.Location, e.Description,
		e.Technologies, e.Current, e.StartDate, e.EndDate, e.ImageURL,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "experience")
	}
	return nil
}

// Update writes end_date unconditionally, so a nil EndDate clears any
// previously stored value rather than leaving it stale.
func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	builder := psql.Update("experiences").
		Set("title", e.Title).
		Set("company", e.Company).
		Set("duration", e.Duration).
		Set("location", e.Location).
		Set("description", e.Description).
		Set("technologies", e.Technologies).
		Set("current", e.Current).
		Set("start_date", e.StartDate).
		Set("end_date", e.EndDate).
		Set("image_url", e.ImageURL).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID})

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build experience update query", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "experience")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `DELETE FROM experiences WHERE id = $1 RETURNING ` + experienceColumns
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Experience", id.String())
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Experience", id.String())
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	builder := psql.Select(experienceColumns).
		From("experiences").
		OrderBy("start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
	}
	return scanExperiences(rows)
}

func (r *postgresExperienceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM experiences`); err != nil {
		return apperror.NewInternal("failed to delete experiences", err)
	}
	return nil
}
