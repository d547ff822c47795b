package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dchlearning/platform/internal/core/domain"
)

type contactDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"nom"`
	Email     string    `bson:"email"`
	Subject   *string   `bson:"sujet"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d contactDoc) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type ContactRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		col: db.Collection(collectionContacts),
		seq: newSequence(db, collectionContacts),
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	doc := contactDoc{
		ID:        id,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contactDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return doc.toDomain(), nil
}
