package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// FormationRepository defines persistence operations for course offerings.
// Lookups by id return domain.ErrNotFound when no row matches.
type FormationRepository interface {
	Create(ctx context.Context, f *domain.Formation) (*domain.Formation, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Formation, error)
	FindByID(ctx context.Context, id int64) (*domain.Formation, error)
	Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error)
	Delete(ctx context.Context, id int64) error
}
