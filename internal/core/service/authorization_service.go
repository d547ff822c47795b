package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// AuthorizationService decides whether a claimed identity may use the admin
// routes. In claim mode the email is taken at face value; in token mode it
// comes out of a verified token.
type AuthorizationService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthorizationService(repo ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthorizationService {
	return &AuthorizationService{repo: repo, tokens: tokens, log: log}
}

func (s *AuthorizationService) AuthorizeAdmin(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewError(domain.ErrNotAuthenticated, domain.MsgClaimRequired)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, domain.MsgUserNotFound)
		}
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgAuthFailure, err)
	}

	if !user.IsAdmin() {
		s.log.Warn().Int64("user_id", user.ID).Msg("admin route refused")
		return nil, domain.NewError(domain.ErrForbidden, domain.MsgAdminRequired)
	}

	return user.Public(), nil
}

func (s *AuthorizationService) EmailFromToken(token string) (string, error) {
	if s.tokens == nil {
		return "", domain.NewError(domain.ErrNotAuthenticated, domain.MsgInvalidToken)
	}
	email, err := s.tokens.Verify(token)
	if err != nil {
		return "", domain.WrapError(domain.ErrNotAuthenticated, domain.MsgInvalidToken, err)
	}
	return email, nil
}
