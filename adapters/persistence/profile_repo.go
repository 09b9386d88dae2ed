package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio/internal/domain/profile"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetActive(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, title, email, phone, location, bio, skills, social, stats, cv_url, avatar_url, is_active, created_at, updated_at
		FROM profiles
		WHERE is_active = true
		ORDER BY created_at
		LIMIT 1
	`
	p := &profile.Profile{}
	var phone *string
	var skillsBytes, socialBytes, statsBytes []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Email,
		&phone,
		&p.Location,
		&p.Bio,
		&skillsBytes,
		&socialBytes,
		&statsBytes,
		&p.CVURL,
		&p.AvatarURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Profile", "active")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	if phone != nil {
		p.Phone = *phone
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal profile skills", zap.String("id", p.ID.String()), zap.Error(err))
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal profile social", zap.String("id", p.ID.String()), zap.Error(err))
	}
	if err := json.Unmarshal(statsBytes, &p.Stats); err != nil {
		r.logger.Warn("Failed to unmarshal profile stats", zap.String("id", p.ID.String()), zap.Error(err))
	}

	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	skillsBytes, socialBytes, statsBytes, err := marshalProfileJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (id, name, title, email, phone, location, bio, skills, social, stats, cv_url, avatar_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Email, nullable(p.Phone), p.Location, p.Bio,
		skillsBytes, socialBytes, statsBytes, p.CVURL, p.AvatarURL, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "profile")
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	skillsBytes, socialBytes, statsBytes, err := marshalProfileJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE profiles SET
			name = $2, title = $3, email = $4, phone = $5, location = $6, bio = $7,
			skills = $8, social = $9, stats = $10, cv_url = $11, avatar_url = $12,
			is_active = $13, updated_at = $14
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Email, nullable(p.Phone), p.Location, p.Bio,
		skillsBytes, socialBytes, statsBytes, p.CVURL, p.AvatarURL, p.IsActive,
		p.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "profile")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profiles`); err != nil {
		return apperror.NewInternal("failed to delete profiles", err)
	}
	return nil
}

func marshalProfileJSON(p *profile.Profile) (skills, social, stats []byte, err error) {
	if skills, err = json.Marshal(p.Skills); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal profile skills", err)
	}
	if social, err = json.Marshal(p.Social); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal profile social", err)
	}
	if stats, err = json.Marshal(p.Stats); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal profile stats", err)
	}
	return skills, social, stats, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
