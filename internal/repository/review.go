package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/adriagil/placelog-api/internal/database"
	"github.com/adriagil/placelog-api/internal/models"
)

// listLimit caps every list query; there is no pagination beyond it.
const listLimit = 100

// ReviewRepository is the persistence surface the review service depends on.
type ReviewRepository interface {
	List(ctx context.Context, filter bson.M) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) (bson.ObjectID, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.M) error
	DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Review, error)
}

type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *database.DB) *MongoReviewRepository {
	return &MongoReviewRepository{collection: db.Database.Collection("reviews")}
}

func (r *MongoReviewRepository) List(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Insert(ctx context.Context, review *models.Review) (bson.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("failed to insert review: %w", err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *MongoReviewRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete review: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// GetByID returns nil without error when no review exists at that id.
func (r *MongoReviewRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}
