package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/contact"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) Save(ctx context.Context, s *contact.Submission) error {
	query := `
		INSERT INTO contacts (id, name, email, subject, message, read, replied, ip_address, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Subject, s.Message, s.Read, s.Replied,
		s.IPAddress, s.UserAgent, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "contact")
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context) ([]*contact.Submission, error) {
	builder := psql.Select("id, name, email, subject, message, read, replied, ip_address, user_agent, created_at, updated_at").
		From("contacts").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build contact list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contacts", err)
	}
	defer rows.Close()

	submissions := make([]*contact.Submission, 0)
	for rows.Next() {
		s := &contact.Submission{}
		err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Read,
			&s.Replied, &s.IPAddress, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan contact row", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact rows", err)
	}
	return submissions, nil
}
