package memory

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

type contactRow = domain.ContactMessage

type contactTable struct {
	table
	rows map[int64]*contactRow
}

type ContactRepository struct {
	db *DB
}

func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	t := r.db.contacts
	t.mu.Lock()
	defer t.mu.Unlock()

	row := *msg
	row.ID = t.nextID()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = r.db.now().UTC()
	}
	t.rows[row.ID] = &row

	clone := row
	return &clone, nil
}

func (r *ContactRepository) FindByID(_ context.Context, id int64) (*domain.ContactMessage, error) {
	t := r.db.contacts
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}
