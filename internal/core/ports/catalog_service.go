package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// ListFormationsInput carries the optional public catalog filters.
type ListFormationsInput struct {
	Category string
	Level    string
	Duration string
	Sort     string
}

// StatusChangeResult is returned by a status patch.
type StatusChangeResult struct {
	Formation *domain.Formation
	Message   string
}

// CatalogService defines the public and administrative catalog use cases.
type CatalogService interface {
	ListPublished(ctx context.Context, input ListFormationsInput) ([]*domain.Formation, error)
	Get(ctx context.Context, id int64) (*domain.Formation, error)
	ListAll(ctx context.Context) ([]*domain.Formation, error)
	Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) (*StatusChangeResult, error)
	// Seed inserts the default catalog when the store holds no formation.
	Seed(ctx context.Context) (int, error)
}
