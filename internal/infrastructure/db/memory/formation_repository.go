package memory

import (
	"context"
	"sort"

	"github.com/dchlearning/platform/internal/core/domain"
)

type formationRow = domain.Formation

type formationTable struct {
	table
	rows map[int64]*formationRow
}

type FormationRepository struct {
	db *DB
}

func NewFormationRepository(db *DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) Create(_ context.Context, f *domain.Formation) (*domain.Formation, error) {
	t := r.db.formations
	t.mu.Lock()
	defer t.mu.Unlock()

	row := *f
	row.ID = t.nextID()
	if row.Status == "" {
		row.Status = domain.StatusPublished
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = r.db.now().UTC()
	}
	t.rows[row.ID] = &row

	clone := row
	return &clone, nil
}

func (r *FormationRepository) Count(_ context.Context) (int64, error) {
	t := r.db.formations
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows)), nil
}

func (r *FormationRepository) List(_ context.Context, filter domain.CatalogFilter) ([]*domain.Formation, error) {
	t := r.db.formations
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*domain.Formation, 0, len(t.rows))
	for _, f := range t.rows {
		if !filter.Matches(f) {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if filter.Sort != domain.SortNewest {
			// NULL prices sort last in both directions.
			if a.Price.Valid != b.Price.Valid {
				return a.Price.Valid
			}
			if a.Price.Valid && !a.Price.Decimal.Equal(b.Price.Decimal) {
				if filter.Sort == domain.SortPriceAsc {
					return a.Price.Decimal.LessThan(b.Price.Decimal)
				}
				return a.Price.Decimal.GreaterThan(b.Price.Decimal)
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (r *FormationRepository) FindByID(_ context.Context, id int64) (*domain.Formation, error) {
	t := r.db.formations
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *FormationRepository) Update(_ context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	t := r.db.formations
	t.mu.Lock()
	defer t.mu.Unlock()

	f, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(f)

	clone := *f
	return &clone, nil
}

func (r *FormationRepository) Delete(_ context.Context, id int64) error {
	t := r.db.formations
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}
