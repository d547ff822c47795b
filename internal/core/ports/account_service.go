package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string // optional
}

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	User *domain.User
	// Bootstrapped is true when this account was the first one and was
	// granted the admin role.
	Bootstrapped bool
}

// LoginResult is returned after a successful login. Token is empty unless
// token-based admin auth is enabled.
type LoginResult struct {
	User  *domain.User
	Token string
}

// AccountService defines account use cases.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Promote(ctx context.Context, id int64) (*domain.User, error)
	ListAccounts(ctx context.Context) ([]*domain.User, error)
}

// AuthorizationService resolves an admin claim to a stored account.
type AuthorizationService interface {
	// AuthorizeAdmin returns the account behind email when it holds the
	// admin role. Failures are NotAuthenticated, NotFound, Forbidden or
	// StoreFailure.
	AuthorizeAdmin(ctx context.Context, email string) (*domain.User, error)
	// EmailFromToken verifies a signed identity token and returns its email.
	EmailFromToken(token string) (string, error)
}
