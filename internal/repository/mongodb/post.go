package mongodb

import (
	"context"

	"github.com/purehouse/post-service/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const postsCollection = "posts"

type postRepo struct {
	coll *mongo.Collection
}

func newPostRepo(db *mongo.Database) Post {
	return &postRepo{
		coll: db.Collection(postsCollection),
	}
}

func (r *postRepo) Insert(ctx context.Context, post model.Post) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]model.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, int64, error) {
	filter := bson.M{"_id": id}

	// Mongo rejects an empty $set document, but a matched-but-unchanged
	// update must still report the match. Answer with an existence count
	// instead of issuing a no-op write.
	if len(set) == 0 {
		matched, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return 0, 0, err
		}
		return matched, 0, nil
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, 0, err
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *postRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
