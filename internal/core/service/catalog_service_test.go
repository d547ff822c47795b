package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

func formation(title string, status domain.FormationStatus) *domain.Formation {
	return &domain.Formation{
		Title:    title,
		Price:    decimal.NewNullDecimal(decimal.RequireFromString("199.99")),
		Category: "Développement Web",
		Status:   status,
	}
}

func TestCatalogService_ListPublished_HidesDrafts(t *testing.T) {
	repo := newStubFormationRepo(
		formation("Go", domain.StatusPublished),
		formation("Rust", domain.StatusDraft),
	)
	svc := NewCatalogService(repo, discardLogger)

	list, err := svc.ListPublished(context.Background(), ports.ListFormationsInput{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go", list[0].Title)
	assert.True(t, repo.lastQuery.PublishedOnly)
}

func TestCatalogService_ListPublished_Filters(t *testing.T) {
	repo := newStubFormationRepo()
	svc := NewCatalogService(repo, discardLogger)

	_, err := svc.ListPublished(context.Background(), ports.ListFormationsInput{
		Category: "Data Science",
		Level:    "Débutant",
		Duration: "8 semaines",
		Sort:     "prix_desc",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogFilter{
		PublishedOnly: true,
		Category:      "Data Science",
		Level:         "Débutant",
		Duration:      "8 semaines",
		Sort:          domain.SortPriceDesc,
	}, repo.lastQuery)
}

func TestCatalogService_ListPublished_InvalidSort(t *testing.T) {
	svc := NewCatalogService(newStubFormationRepo(), discardLogger)

	_, err := svc.ListPublished(context.Background(), ports.ListFormationsInput{Sort: "alphabetique"})
	requireKind(t, err, domain.ErrInvalidInput, domain.MsgInvalidSort)
}

func TestCatalogService_ListPublished_StoreFailure(t *testing.T) {
	repo := newStubFormationRepo()
	repo.err = errBoom
	svc := NewCatalogService(repo, discardLogger)

	_, err := svc.ListPublished(context.Background(), ports.ListFormationsInput{})
	requireKind(t, err, domain.ErrStoreFailure, domain.MsgListFailure)
}

func TestCatalogService_Get(t *testing.T) {
	repo := newStubFormationRepo(formation("Rust", domain.StatusDraft))
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	// Drafts stay reachable by id.
	f, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, f.Status)

	_, err = svc.Get(ctx, 999)
	requireKind(t, err, domain.ErrNotFound, domain.MsgFormationNotFound)
}

func TestCatalogService_ListAll_IncludesDrafts(t *testing.T) {
	repo := newStubFormationRepo(
		formation("Go", domain.StatusPublished),
		formation("Rust", domain.StatusDraft),
	)
	svc := NewCatalogService(repo, discardLogger)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.False(t, repo.lastQuery.PublishedOnly)
}

func TestCatalogService_Update(t *testing.T) {
	repo := newStubFormationRepo(formation("Go", domain.StatusPublished))
	svc := NewCatalogService(repo, discardLogger)

	title := "Go avancé"
	price := decimal.RequireFromString("249.50")
	f, err := svc.Update(context.Background(), 1, domain.FormationPatch{Title: &title, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Go avancé", f.Title)
	assert.Equal(t, "249.5", f.Price.Decimal.String())
	assert.Equal(t, "Développement Web", f.Category, "untouched fields are kept")
}

func TestCatalogService_Update_Rejections(t *testing.T) {
	repo := newStubFormationRepo(formation("Go", domain.StatusPublished))
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, domain.FormationPatch{})
	requireKind(t, err, domain.ErrInvalidInput, domain.MsgNothingToUpdate)

	bad := domain.FormationStatus("archive")
	_, err = svc.Update(ctx, 1, domain.FormationPatch{Status: &bad})
	requireKind(t, err, domain.ErrInvalidInput, domain.MsgInvalidStatus)

	negative := decimal.NewFromInt(-1)
	_, err = svc.Update(ctx, 1, domain.FormationPatch{Price: &negative})
	requireKind(t, err, domain.ErrInvalidInput, domain.MsgInvalidPrice)

	title := "x"
	_, err = svc.Update(ctx, 999, domain.FormationPatch{Title: &title})
	requireKind(t, err, domain.ErrNotFound, domain.MsgFormationNotFound)

	stored, _ := repo.FindByID(ctx, 1)
	assert.Equal(t, "Go", stored.Title)
	assert.Equal(t, domain.StatusPublished, stored.Status)
}

func TestCatalogService_Delete(t *testing.T) {
	repo := newStubFormationRepo(formation("Go", domain.StatusPublished))
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Empty(t, repo.rows)

	err := svc.Delete(ctx, 1)
	requireKind(t, err, domain.ErrNotFound, domain.MsgFormationNotFound)
}

func TestCatalogService_SetStatus(t *testing.T) {
	repo := newStubFormationRepo(formation("Go", domain.StatusPublished))
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	res, err := svc.SetStatus(ctx, 1, "brouillon")
	require.NoError(t, err)
	assert.Equal(t, domain.MsgDrafted, res.Message)
	assert.Equal(t, domain.StatusDraft, res.Formation.Status)

	res, err = svc.SetStatus(ctx, 1, "publie")
	require.NoError(t, err)
	assert.Equal(t, domain.MsgPublished, res.Message)
	assert.Equal(t, domain.StatusPublished, res.Formation.Status)
}

func TestCatalogService_SetStatus_Invalid(t *testing.T) {
	repo := newStubFormationRepo(formation("Go", domain.StatusPublished))
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, 1, "archive")
	requireKind(t, err, domain.ErrInvalidInput, domain.MsgInvalidStatus)

	stored, _ := repo.FindByID(ctx, 1)
	assert.Equal(t, domain.StatusPublished, stored.Status)

	_, err = svc.SetStatus(ctx, 999, "publie")
	requireKind(t, err, domain.ErrNotFound, domain.MsgFormationNotFound)
}

func TestCatalogService_Seed(t *testing.T) {
	repo := newStubFormationRepo()
	svc := NewCatalogService(repo, discardLogger)
	ctx := context.Background()

	n, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(domain.SeedCatalog()), n)

	// A non-empty store is left alone.
	n, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, repo.rows, len(domain.SeedCatalog()))
}
