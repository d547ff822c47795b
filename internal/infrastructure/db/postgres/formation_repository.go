package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dchlearning/platform/internal/core/domain"
)

// Nullable text columns come back as empty strings; prix is read as text to
// keep its exact decimal representation.
var formationColumns = []string{
	"id",
	"titre",
	"COALESCE(description, '')",
	"COALESCE(duree, '')",
	"prix::text AS prix",
	"COALESCE(niveau, '')",
	"COALESCE(categorie, '')",
	"statut",
	"COALESCE(image, '')",
	"created_at",
}

type FormationRepository struct {
	db *pgxpool.Pool
}

func NewFormationRepository(db *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) Create(ctx context.Context, f *domain.Formation) (*domain.Formation, error) {
	status := f.Status
	if status == "" {
		status = domain.StatusPublished
	}

	row, err := queryRow(ctx, r.db, psql.Insert("formations").
		Columns("titre", "description", "duree", "prix", "niveau", "categorie", "statut", "image").
		Values(f.Title, f.Description, f.Duration, priceValue(f.Price), f.Level, f.Category, string(status), f.Image).
		Suffix("RETURNING "+joinColumns(formationColumns)))
	if err != nil {
		return nil, err
	}

	created, err := scanFormation(row)
	if err != nil {
		return nil, fmt.Errorf("insert formation: %w", err)
	}
	return created, nil
}

func (r *FormationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM formations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count formations: %w", err)
	}
	return n, nil
}

func (r *FormationRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Formation, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	defer rows.Close()

	formations := make([]*domain.Formation, 0)
	for rows.Next() {
		f, err := scanFormation(rows)
		if err != nil {
			return nil, err
		}
		formations = append(formations, f)
	}
	return formations, rows.Err()
}

func (r *FormationRepository) FindByID(ctx context.Context, id int64) (*domain.Formation, error) {
	row, err := queryRow(ctx, r.db, psql.Select(formationColumns...).From("formations").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	f, err := scanFormation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return f, err
}

func (r *FormationRepository) Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	set := patchColumns(patch)
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	row, err := queryRow(ctx, r.db, psql.Update("formations").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING "+joinColumns(formationColumns)))
	if err != nil {
		return nil, err
	}

	f, err := scanFormation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return f, err
}

func (r *FormationRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("formations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func listQuery(filter domain.CatalogFilter) sq.SelectBuilder {
	b := psql.Select(formationColumns...).From("formations")

	if filter.PublishedOnly {
		b = b.Where(sq.Eq{"statut": string(domain.StatusPublished)})
	}
	if filter.Category != "" {
		b = b.Where(sq.Eq{"categorie": filter.Category})
	}
	if filter.Level != "" {
		b = b.Where(sq.Eq{"niveau": filter.Level})
	}
	if filter.Duration != "" {
		b = b.Where(sq.Eq{"duree": filter.Duration})
	}

	// The output column prix is text, so ordering uses the table column.
	switch filter.Sort {
	case domain.SortPriceAsc:
		b = b.OrderBy("formations.prix ASC NULLS LAST")
	case domain.SortPriceDesc:
		b = b.OrderBy("formations.prix DESC NULLS LAST")
	}
	return b.OrderBy("created_at DESC", "id DESC")
}

func patchColumns(p domain.FormationPatch) map[string]any {
	set := make(map[string]any)
	if p.Title != nil {
		set["titre"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Duration != nil {
		set["duree"] = *p.Duration
	}
	if p.Price != nil {
		set["prix"] = sq.Expr("?::numeric", p.Price.String())
	}
	if p.Level != nil {
		set["niveau"] = *p.Level
	}
	if p.Category != nil {
		set["categorie"] = *p.Category
	}
	if p.Status != nil {
		set["statut"] = string(*p.Status)
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	return set
}

func priceValue(p decimal.NullDecimal) any {
	if !p.Valid {
		return nil
	}
	return sq.Expr("?::numeric", p.Decimal.String())
}

func scanFormation(row pgx.Row) (*domain.Formation, error) {
	var (
		f      domain.Formation
		price  *string
		status string
	)
	if err := row.Scan(&f.ID, &f.Title, &f.Description, &f.Duration, &price,
		&f.Level, &f.Category, &status, &f.Image, &f.CreatedAt); err != nil {
		return nil, err
	}

	if price != nil {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return nil, fmt.Errorf("parse prix %q: %w", *price, err)
		}
		f.Price = decimal.NewNullDecimal(d)
	}
	f.Status = domain.FormationStatus(status)
	return &f, nil
}
