package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio/internal/application/service"
	"portfolio/internal/domain/contact"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type ContactUseCase struct {
	repo   contact.Repository
	mailer service.Mailer
	logger logger.Logger
}

func NewContactUseCase(repo contact.Repository, mailer service.Mailer, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, mailer: mailer, logger: log}
}

type SubmitInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress *string
	UserAgent *string
}

// Submit persists the submission and then fires the two notification emails.
// Persistence is the source of truth: a mail failure is logged and swallowed,
// the submission still succeeds.
func (uc *ContactUseCase) Submit(ctx context.Context, in SubmitInput) (*contact.Submission, error) {
	now := time.Now().UTC()
	s := &contact.Submission{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.logger.Info("contact form submission",
		zap.String("id", s.ID.String()),
		zap.String("email", s.Email),
		zap.String("subject", s.Subject),
	)

	if uc.mailer != nil {
		if err := uc.mailer.NotifyOwner(ctx, s); err != nil {
			uc.logger.Warn("owner notification failed", zap.String("id", s.ID.String()), zap.Error(err))
		}
		if err := uc.mailer.Acknowledge(ctx, s); err != nil {
			uc.logger.Warn("submitter acknowledgment failed", zap.String("id", s.ID.String()), zap.Error(err))
		}
	}

	return s, nil
}

func (uc *ContactUseCase) List(ctx context.Context) ([]*contact.Submission, error) {
	return uc.repo.List(ctx)
}
