package mongo

import (
	"context"
	"errors"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const feedbackCollectionName = "feedback"

// mongoFeedbackRepository implements repository.FeedbackRepository using MongoDB.
type mongoFeedbackRepository struct {
	collection *mongo.Collection
}

// NewMongoFeedbackRepository creates a new instance of mongoFeedbackRepository.
func NewMongoFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &mongoFeedbackRepository{
		collection: db.Collection(feedbackCollectionName),
	}
}

// Create inserts a new feedback record. Feedback is write-once.
func (r *mongoFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) (primitive.ObjectID, error) {
	feedback.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetAll retrieves every feedback record, newest first. The listing is
// public and unauthenticated.
func (r *mongoFeedbackRepository) GetAll(ctx context.Context) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedback []domain.Feedback
	if err = cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
