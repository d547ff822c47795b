package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dchlearning/platform/internal/core/domain"
)

type userDoc struct {
	ID           int64     `bson:"_id"`
	Name         string    `bson:"nom"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"mot_de_passe"`
	Phone        *string   `bson:"telephone"`
	Role         string    `bson:"role"`
	Bootstrap    bool      `bson:"bootstrap,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Role:         domain.Role(d.Role),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// userIndexes: email is unique, and at most one document may carry the
// bootstrap marker, which makes the first-admin decision race free.
func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys: bson.D{{Key: "bootstrap", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"bootstrap": true}).
				SetName("bootstrap_admin_unique"),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
	}
}

type UserRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		col: db.Collection(collectionUsers),
		seq: newSequence(db, collectionUsers),
	}
}

func (r *UserRepository) CreateAccount(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	if n == 0 {
		created, err := r.insert(ctx, user, true)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errBootstrapTaken) {
			return nil, err
		}
		// Another registration claimed the bootstrap slot first.
	}

	return r.insert(ctx, user, false)
}

var errBootstrapTaken = errors.New("bootstrap admin already exists")

func (r *UserRepository) insert(ctx context.Context, user *domain.User, bootstrap bool) (*domain.User, error) {
	id, err := r.seq.next(ctx)
	if err != nil {
		return nil, err
	}

	doc := userDoc{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Role:         string(domain.RoleUser),
		Bootstrap:    bootstrap,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	if bootstrap {
		doc.Role = string(domain.RoleAdmin)
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if bootstrap && !r.emailExists(ctx, user.Email) {
				return nil, errBootstrapTaken
			}
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) emailExists(ctx context.Context, email string) bool {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	return err == nil && n > 0
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, len(docs))
	for i, d := range docs {
		users[i] = d.toDomain()
	}
	return users, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": string(role)}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set role: %w", err)
	}
	return doc.toDomain(), nil
}
