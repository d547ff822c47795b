package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchlearning/platform/internal/core/domain"
)

// tickingDB returns a DB whose clock advances one minute per insert.
func tickingDB() *DB {
	db := Open()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	db.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return db
}

func priced(title, price string, status domain.FormationStatus) *domain.Formation {
	f := &domain.Formation{Title: title, Status: status, Category: "Web", Level: "Débutant"}
	if price != "" {
		f.Price = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	return f
}

func titles(fs []*domain.Formation) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Title
	}
	return out
}

func seedFormations(t *testing.T, repo *FormationRepository) {
	t.Helper()
	for _, f := range []*domain.Formation{
		priced("A", "299.99", domain.StatusPublished),
		priced("B", "", domain.StatusPublished),
		priced("C", "99", domain.StatusDraft),
		priced("D", "599.99", domain.StatusPublished),
	} {
		_, err := repo.Create(context.Background(), f)
		require.NoError(t, err)
	}
}

func TestFormationRepository_ListOrdering(t *testing.T) {
	repo := NewFormationRepository(tickingDB())
	seedFormations(t, repo)
	ctx := context.Background()

	all, err := repo.List(ctx, domain.CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B", "A"}, titles(all))

	published, err := repo.List(ctx, domain.CatalogFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "A"}, titles(published))

	asc, err := repo.List(ctx, domain.CatalogFilter{PublishedOnly: true, Sort: domain.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "B"}, titles(asc))

	desc, err := repo.List(ctx, domain.CatalogFilter{PublishedOnly: true, Sort: domain.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "B"}, titles(desc))
}

func TestFormationRepository_CreateDefaults(t *testing.T) {
	repo := NewFormationRepository(Open())

	f, err := repo.Create(context.Background(), &domain.Formation{Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, f.Status)
	assert.False(t, f.CreatedAt.IsZero())
	assert.False(t, f.Price.Valid)
}

func TestFormationRepository_UpdateDelete(t *testing.T) {
	repo := NewFormationRepository(tickingDB())
	seedFormations(t, repo)
	ctx := context.Background()

	draft := domain.StatusDraft
	price := decimal.RequireFromString("10")
	f, err := repo.Update(ctx, 1, domain.FormationPatch{Status: &draft, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, f.Status)
	assert.True(t, f.Price.Decimal.Equal(price))
	assert.Equal(t, "A", f.Title)

	_, err = repo.Update(ctx, 99, domain.FormationPatch{Status: &draft})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrNotFound)

	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
