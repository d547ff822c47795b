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

var contactColumns = []string{"id", "nom", "email", "sujet", "message", "created_at"}

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	var createdAt any = sq.Expr("DEFAULT")
	if !msg.CreatedAt.IsZero() {
		createdAt = msg.CreatedAt
	}

	row, err := queryRow(ctx, r.db, psql.Insert("contacts").
		Columns("nom", "email", "sujet", "message", "created_at").
		Values(msg.Name, msg.Email, msg.Subject, msg.Message, createdAt).
		Suffix("RETURNING "+joinColumns(contactColumns)))
	if err != nil {
		return nil, err
	}

	created, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return created, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	row, err := queryRow(ctx, r.db, psql.Select(contactColumns...).From("contacts").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	c, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func scanContact(row pgx.Row) (*domain.ContactMessage, error) {
	var c domain.ContactMessage
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
