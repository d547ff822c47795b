package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// CatalogService serves the public catalog and the admin catalog operations.
type CatalogService struct {
	repo ports.FormationRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.FormationRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// ListPublished returns published formations only, newest first unless a
// price ordering is requested.
func (s *CatalogService) ListPublished(ctx context.Context, in ports.ListFormationsInput) ([]*domain.Formation, error) {
	sort := domain.PriceSort(in.Sort)
	if !sort.Valid() {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidSort)
	}

	formations, err := s.repo.List(ctx, domain.CatalogFilter{
		PublishedOnly: true,
		Category:      in.Category,
		Level:         in.Level,
		Duration:      in.Duration,
		Sort:          sort,
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgListFailure, err)
	}
	return formations, nil
}

// Get returns a formation by id whatever its status: drafts stay reachable
// by direct id even though the public listing hides them.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Formation, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.MsgFormationNotFound, domain.MsgGetFailure)
	}
	return f, nil
}

// ListAll returns every formation, drafts included.
func (s *CatalogService) ListAll(ctx context.Context) ([]*domain.Formation, error) {
	formations, err := s.repo.List(ctx, domain.CatalogFilter{})
	if err != nil {
		return nil, domain.WrapError(domain.ErrStoreFailure, domain.MsgAdminListFailure, err)
	}
	return formations, nil
}

// Update applies a partial update restricted to the patchable fields.
func (s *CatalogService) Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	if patch.Empty() {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgNothingToUpdate)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidStatus)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidPrice)
	}

	f, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundOr(err, domain.MsgFormationNotFound, domain.MsgUpdateFailure)
	}

	s.log.Info().Int64("formation_id", id).Msg("formation updated")
	return f, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, domain.MsgFormationNotFound, domain.MsgDeleteFailure)
	}

	s.log.Info().Int64("formation_id", id).Msg("formation deleted")
	return nil
}

// SetStatus switches a formation between published and draft.
func (s *CatalogService) SetStatus(ctx context.Context, id int64, status string) (*ports.StatusChangeResult, error) {
	next := domain.FormationStatus(status)
	if !next.Valid() {
		return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidStatus)
	}

	f, err := s.repo.Update(ctx, id, domain.FormationPatch{Status: &next})
	if err != nil {
		return nil, notFoundOr(err, domain.MsgFormationNotFound, domain.MsgStatusFailure)
	}

	msg := domain.MsgDrafted
	if next == domain.StatusPublished {
		msg = domain.MsgPublished
	}

	s.log.Info().Int64("formation_id", id).Str("statut", string(next)).Msg("formation status changed")
	return &ports.StatusChangeResult{Formation: f, Message: msg}, nil
}

// Seed inserts the default catalog into an empty store and reports how many
// formations were created.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	created := 0
	for _, f := range domain.SeedCatalog() {
		if _, err := s.repo.Create(ctx, f); err != nil {
			return created, err
		}
		created++
	}

	s.log.Info().Int("count", created).Msg("catalog seeded")
	return created, nil
}

func notFoundOr(err error, notFoundMsg, failureMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewError(domain.ErrNotFound, notFoundMsg)
	}
	return domain.WrapError(domain.ErrStoreFailure, failureMsg, err)
}
