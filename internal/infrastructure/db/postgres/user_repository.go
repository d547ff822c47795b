package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dchlearning/platform/internal/core/domain"
)

// bootstrapLockKey serializes account creation so that exactly one account
// observes an empty table.
const bootstrapLockKey int64 = 0x75736572

var userColumns = []string{"id", "nom", "email", "mot_de_passe", "telephone", "role", "created_at"}

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateAccount(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", bootstrapLockKey); err != nil {
		return nil, fmt.Errorf("bootstrap lock: %w", err)
	}

	var existing int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&existing); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	role := domain.RoleUser
	if existing == 0 {
		role = domain.RoleAdmin
	}

	row, err := queryRow(ctx, tx, psql.Insert("users").
		Columns("nom", "email", "mot_de_passe", "telephone", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Phone, string(role)).
		Suffix("RETURNING "+joinColumns(userColumns)))
	if err != nil {
		return nil, err
	}

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := queryRow(ctx, r.db, psql.Select(userColumns...).From("users").Where(sq.Eq{"email": email}))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) SetRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	row, err := queryRow(ctx, r.db, psql.Update("users").
		Set("role", string(role)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING "+joinColumns(userColumns)))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
