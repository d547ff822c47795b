package memory

import (
	"context"
	"sort"

	"github.com/dchlearning/platform/internal/core/domain"
)

type userRow = domain.User

type userTable struct {
	table
	rows map[int64]*userRow
}

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateAccount checks uniqueness, counts and inserts under one lock, so the
// first-account decision cannot race.
func (r *UserRepository) CreateAccount(_ context.Context, user *domain.User) (*domain.User, error) {
	t := r.db.users
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range t.rows {
		if u.Email == user.Email {
			return nil, domain.ErrConflict
		}
	}

	row := *user
	row.ID = t.nextID()
	row.CreatedAt = r.db.now().UTC()
	row.Role = domain.RoleUser
	if len(t.rows) == 0 {
		row.Role = domain.RoleAdmin
	}
	t.rows[row.ID] = &row

	clone := row
	return &clone, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	t := r.db.users
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, u := range t.rows {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	t := r.db.users
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*domain.User, 0, len(t.rows))
	for _, u := range t.rows {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *UserRepository) SetRole(_ context.Context, id int64, role domain.Role) (*domain.User, error) {
	t := r.db.users
	t.mu.Lock()
	defer t.mu.Unlock()

	u, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Role = role

	clone := *u
	return &clone, nil
}
