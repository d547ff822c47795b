package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// AccountService implements registration, login and promotion.
type AccountService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer // nil unless token auth is enabled
	log    zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an account. The first account ever created becomes admin;
// the store makes that decision atomically with the insert.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgRegisterMissing)
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.NewError(domain.ErrConflict, domain.MsgEmailTaken)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgRegisterFailure, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgRegisterFailure, err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if in.Phone != "" {
		phone := in.Phone
		user.Phone = &phone
	}

	created, err := s.repo.CreateAccount(ctx, user)
	if err != nil {
		// The pre-check above can lose a race against a concurrent insert.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.WrapError(domain.ErrConflict, domain.MsgEmailTakenRace, err)
		}
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgRegisterFailure, err)
	}

	bootstrapped := created.IsAdmin()
	if bootstrapped {
		s.log.Info().Int64("user_id", created.ID).Msg("bootstrap admin created")
	} else {
		s.log.Info().Int64("user_id", created.ID).Msg("account registered")
	}

	return &ports.RegisterResult{User: created.Public(), Bootstrapped: bootstrapped}, nil
}

// Login checks an email/password pair. Unknown email and wrong password fail
// with the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgLoginMissing)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrInvalidCredentials, domain.MsgBadCredentials)
		}
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgLoginFailure, err)
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return nil, domain.NewError(domain.ErrInvalidCredentials, domain.MsgBadCredentials)
	}

	result := &ports.LoginResult{User: user.Public()}
	if s.tokens != nil {
		token, err := s.tokens.Issue(user.ID, user.Email)
		if err != nil {
			return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgLoginFailure, err)
		}
		result.Token = token
	}

	s.log.Debug().Int64("user_id", user.ID).Msg("login succeeded")
	return result, nil
}

// Promote grants the admin role. Promoting an admin again is a no-op success.
func (s *AccountService) Promote(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, domain.MsgUserNotFound)
		}
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgPromoteFailure, err)
	}

	s.log.Info().Int64("user_id", id).Msg("account promoted to admin")
	return user.Public(), nil
}

// ListAccounts returns every account without credentials.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgListUsersFailure, err)
	}

	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}
