package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/blog"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type postgresBlogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresBlogRepo(db *pgxpool.Pool, logger logger.Logger) blog.Repository {
	return &postgresBlogRepo{db: db, logger: logger}
}

const blogColumns = "id, title, slug, excerpt, content, author, author_role, author_image, cover_image, category, tags, featured, published_at, reading_time, created_at, updated_at"

func scanBlog(row pgx.Row) (*blog.Blog, error) {
	b := &blog.Blog{}
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Excerpt,
		&b.Content,
		&b.Author,
		&b.AuthorRole,
		&b.AuthorImage,
		&b.CoverImage,
		&b.Category,
		&b.Tags,
		&b.Featured,
		&b.PublishedAt,
		&b.ReadingTime,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Blog", "")
		}
		return nil, apperror.NewInternal("failed to scan blog row", err)
	}
	return b, nil
}

func scanBlogs(rows pgx.Rows) ([]*blog.Blog, error) {
	defer rows.Close()
	blogs := make([]*blog.Blog, 0)

	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating blog rows", err)
	}
	return blogs, nil
}

func (r *postgresBlogRepo) Save(ctx context.Context, b *blog.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, excerpt, content, author, author_role, author_image, cover_image, category, tags, featured, published_at, reading_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Author, b.AuthorRole,
		b.AuthorImage, b.CoverImage, b.Category, b.Tags, b.Featured,
		b.PublishedAt, b.ReadingTime, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("Blog", "slug", b.Slug)
		}
		return translateWriteError(err, "blog")
	}
	return nil
}

func (r *postgresBlogRepo) Update(ctx context.Context, b *blog.Blog) error {
	builder := psql.Update("blogs").
		Set("title", b.Title).
		Set("slug", b.Slug).
		Set("excerpt", b.Excerpt).
		Set("content", b.Content).
		Set("author", b.Author).
		Set("author_role", b.AuthorRole).
		Set("author_image", b.AuthorImage).
		Set("cover_image", b.CoverImage).
		Set("category", b.Category).
		Set("tags", b.Tags).
		Set("featured", b.Featured).
		Set("published_at", b.PublishedAt).
		Set("reading_time", b.ReadingTime).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"id": b.ID})

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build blog update query", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("Blog", "slug", b.Slug)
		}
		return translateWriteError(err, "blog")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Blog", b.ID.String())
	}
	return nil
}

func (r *postgresBlogRepo) Delete(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	query := `DELETE FROM blogs WHERE id = $1 RETURNING ` + blogColumns
	b, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Blog", id.String())
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	b, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Blog", id.String())
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresBlogRepo) FindBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1`
	b, err := scanBlog(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("Blog", slug)
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresBlogRepo) List(ctx context.Context) ([]*blog.Blog, error) {
	builder := psql.Select(blogColumns).
		From("blogs").
		OrderBy("published_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build blog list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query blogs", err)
	}
	return scanBlogs(rows)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := errors.As(err, &pgErr)
	return pgErr, ok
}
