package mongodb

import (
	"context"
	"errors"

	"github.com/purehouse/post-service/internal/config"
	"github.com/purehouse/post-service/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidID = errors.New("invalid post ID")

type Post interface {
	Insert(ctx context.Context, post model.Post) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (matched int64, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type MongoRepository struct {
	Post
}

func New(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Post: newPostRepo(db),
	}
}

// Connect establishes the long-lived client shared by all operations.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
}

// ParseID converts the external string form of a post identifier to the
// store's native one. A malformed string yields ErrInvalidID, which is not
// the same condition as a well-formed identifier that matches nothing.
func ParseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objectID, nil
}
