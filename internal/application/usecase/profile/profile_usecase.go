package profile

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain/profile"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type ProfileUseCase struct {
	repo   profile.Repository
	logger logger.Logger
}

func NewProfileUseCase(repo profile.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, logger: log}
}

// Get returns the active profile, creating the default one on first read.
func (uc *ProfileUseCase) Get(ctx context.Context) (*profile.Profile, error) {
	p, err := uc.repo.GetActive(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	p = profile.Default()
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.Info("created default profile on first read")
	return p, nil
}

// UpdateInput carries only the fields the caller supplied. Nested objects are
// replaced wholesale when present, matching the original's shallow merge.
type UpdateInput struct {
	Name      *string
	Title     *string
	Email     *string
	Phone     *string
	Location  *string
	Bio       *string
	Skills    *profile.Skills
	Social    *profile.Social
	Stats     *profile.Stats
	CVURL     *string
	AvatarURL *string
}

func (uc *ProfileUseCase) Update(ctx context.Context, in UpdateInput) (*profile.Profile, error) {
	p, err := uc.repo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		p = profile.Default()
		if err := uc.repo.Save(ctx, p); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Social != nil {
		p.Social = *in.Social
	}
	if in.Stats != nil {
		p.Stats = *in.Stats
	}
	if in.CVURL != nil {
		p.CVURL = in.CVURL
	}
	if in.AvatarURL != nil {
		p.AvatarURL = in.AvatarURL
	}
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetCVURL records the public path of the most recent CV upload.
func (uc *ProfileUseCase) SetCVURL(ctx context.Context, path string) error {
	return uc.setURL(ctx, func(p *profile.Profile) { p.CVURL = &path })
}

func (uc *ProfileUseCase) setURL(ctx context.Context, assign func(*profile.Profile)) error {
	p, err := uc.Get(ctx)
	if err != nil {
		return err
	}
	assign(p)
	p.UpdatedAt = time.Now().UTC()
	return uc.repo.Update(ctx, p)
}
