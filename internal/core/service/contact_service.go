package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// ContactService captures contact form messages.
type ContactService struct {
	repo  ports.ContactRepository
	idem  ports.IdempotencyStore // optional
	log   zerolog.Logger
	clock func() time.Time
}

// NewContactService returns a ContactService. idem may be nil, in which case
// Idempotency-Key headers are ignored.
func NewContactService(repo ports.ContactRepository, idem ports.IdempotencyStore, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, idem: idem, log: log, clock: time.Now}
}

// Submit validates and stores a contact message. When an idempotency key was
// already seen, the earlier message is returned and nothing is appended.
func (s *ContactService) Submit(ctx context.Context, in ports.SubmitContactInput) (*ports.SubmitContactResult, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgContactMissing)
	}

	if replay := s.replay(ctx, in.IdempotencyKey); replay != nil {
		return &ports.SubmitContactResult{Contact: replay, Replayed: true}, nil
	}

	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: s.clock().UTC(),
	}
	if in.Subject != "" {
		subject := in.Subject
		msg.Subject = &subject
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgContactFailure, err)
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, in.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().Int64("contact_id", created.ID).Msg("contact message stored")
	return &ports.SubmitContactResult{Contact: created}, nil
}

// replay returns the message an idempotency key already produced, or nil.
// Lookup failures fall back to normal processing.
func (s *ContactService) replay(ctx context.Context, key string) *domain.ContactMessage {
	if key == "" || s.idem == nil {
		return nil
	}

	id, ok, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, processing anyway")
		return nil
	}
	if !ok {
		return nil
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Int64("contact_id", id).Msg("idempotent replay target missing")
		return nil
	}

	s.log.Info().Int64("contact_id", id).Msg("idempotent replay")
	return msg
}
