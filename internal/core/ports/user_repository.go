package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// CreateAccount inserts a new account. The repository decides the role
	// atomically: admin when no account exists yet, user otherwise. A
	// uniqueness violation on email is reported as domain.ErrConflict.
	CreateAccount(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the account including its password hash, or
	// domain.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all accounts, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// SetRole changes the role of an account, or returns domain.ErrNotFound.
	SetRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
}
