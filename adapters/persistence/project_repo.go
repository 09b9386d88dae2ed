package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/project"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = "id, title, description, full_description, technologies, github_url, live_url, image_url, category, featured, created_at, updated_at"

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.FullDescription,
		&p.Technologies,
		&p.GithubURL,
		&p.LiveURL,
		&p.ImageURL,
		&p.Category,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, title, description, full_description, technologies, github_url, live_url, image_url, category, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.FullDescription, p.Technologies,
		p.GithubURL, p.LiveURL, p.ImageURL, p.Category, p.Featured,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "project")
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	builder := psql.Update("projects").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("full_description", p.FullDescription).
		Set("technologies", p.Technologies).
		Set("github_url", p.GithubURL).
		Set("live_url", p.LiveURL).
		Set("image_url", p.ImageURL).
		Set("category", p.Category).
		Set("featured", p.Featured).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID})

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build project update query", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "project")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `DELETE FROM projects WHERE id = $1 RETURNING ` + projectColumns
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Project", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Project", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM projects`); err != nil {
		return apperror.NewInternal("failed to delete projects", err)
	}
	return nil
}
