package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dchlearning/platform/internal/core/domain"
)

// formationDoc stores prix as Decimal128. has_prix lets price orderings put
// missing prices last in both directions.
type formationDoc struct {
	ID          int64                 `bson:"_id"`
	Title       string                `bson:"titre"`
	Description string                `bson:"description"`
	Duration    string                `bson:"duree"`
	Price       *primitive.Decimal128 `bson:"prix"`
	HasPrice    bool                  `bson:"has_prix"`
	Level       string                `bson:"niveau"`
	Category    string                `bson:"categorie"`
	Status      string                `bson:"statut"`
	Image       string                `bson:"image"`
	CreatedAt   time.Time             `bson:"created_at"`
}

func (d formationDoc) toDomain() (*domain.Formation, error) {
	f := &domain.Formation{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Level:       d.Level,
		Category:    d.Category,
		Status:      domain.FormationStatus(d.Status),
		Image:       d.Image,
		CreatedAt:   d.CreatedAt.UTC(),
	}
	if d.Price != nil {
		p, err := decimal.NewFromString(d.Price.String())
		if err != nil {
			return nil, fmt.Errorf("decode prix: %w", err)
		}
		f.Price = decimal.NewNullDecimal(p)
	}
	return f, nil
}

func toDecimal128(d decimal.Decimal) (*primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return nil, fmt.Errorf("encode prix: %w", err)
	}
	return &v, nil
}

func formationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "statut", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "categorie", Value: 1}}},
	}
}

type FormationRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewFormationRepository(db *mongo.Database) *FormationRepository {
	return &FormationRepository{
		col: db.Collection(collectionFormations),
		seq: newSequence(db, collectionFormations),
	}
}

func (r *FormationRepository) Create(ctx context.Context, f *domain.Formation) (*domain.Formation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := formationDoc{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		Duration:    f.Duration,
		Level:       f.Level,
		Category:    f.Category,
		Status:      string(f.Status),
		Image:       f.Image,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	if doc.Status == "" {
		doc.Status = string(domain.StatusPublished)
	}
	if f.Price.Valid {
		if doc.Price, err = toDecimal128(f.Price.Decimal); err != nil {
			return nil, err
		}
		doc.HasPrice = true
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert formation: %w", err)
	}
	return doc.toDomain()
}

func (r *FormationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count formations: %w", err)
	}
	return n, nil
}

func (r *FormationRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Formation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q, sort := listQuery(filter)

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	defer cur.Close(ctx)

	var docs []formationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode formations: %w", err)
	}

	out := make([]*domain.Formation, 0, len(docs))
	for _, d := range docs {
		f, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *FormationRepository) FindByID(ctx context.Context, id int64) (*domain.Formation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc formationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find formation: %w", err)
	}
	return doc.toDomain()
}

func (r *FormationRepository) Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	set, err := patchSet(patch)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc formationDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update formation: %w", err)
	}
	return doc.toDomain()
}

func (r *FormationRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// listQuery builds the filter and sort of a catalog listing.
func listQuery(filter domain.CatalogFilter) (bson.M, bson.D) {
	q := bson.M{}
	if filter.PublishedOnly {
		q["statut"] = string(domain.StatusPublished)
	}
	if filter.Category != "" {
		q["categorie"] = filter.Category
	}
	if filter.Level != "" {
		q["niveau"] = filter.Level
	}
	if filter.Duration != "" {
		q["duree"] = filter.Duration
	}

	var sort bson.D
	switch filter.Sort {
	case domain.SortPriceAsc:
		sort = bson.D{{Key: "has_prix", Value: -1}, {Key: "prix", Value: 1}}
	case domain.SortPriceDesc:
		sort = bson.D{{Key: "has_prix", Value: -1}, {Key: "prix", Value: -1}}
	}
	sort = append(sort, bson.E{Key: "created_at", Value: -1}, bson.E{Key: "_id", Value: -1})
	return q, sort
}

func patchSet(p domain.FormationPatch) (bson.M, error) {
	set := bson.M{}
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
		v, err := toDecimal128(*p.Price)
		if err != nil {
			return nil, err
		}
		set["prix"] = v
		set["has_prix"] = true
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
	return set, nil
}
