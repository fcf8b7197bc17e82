package mongo

import (
	"context"
	"errors"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const nutritionCollectionName = "nutrition_logs"

// mongoNutritionRepository implements repository.NutritionRepository using MongoDB.
type mongoNutritionRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionRepository creates a new instance of mongoNutritionRepository.
func NewMongoNutritionRepository(db *mongo.Database) repository.NutritionRepository {
	return &mongoNutritionRepository{
		collection: db.Collection(nutritionCollectionName),
	}
}

// Create inserts a new nutrition log.
func (r *mongoNutritionRepository) Create(ctx context.Context, log *domain.NutritionLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single nutrition log.
func (r *mongoNutritionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.NutritionLog, error) {
	var log domain.NutritionLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GetByUserID retrieves all nutrition logs for a user, newest date first.
func (r *mongoNutritionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.NutritionLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Update replaces the mutable fields of a nutrition log.
func (r *mongoNutritionRepository) Update(ctx context.Context, log *domain.NutritionLog) error {
	update := bson.M{
		"$set": bson.M{
			"mealType":  log.MealType,
			"foodItems": log.FoodItems,
			"date":      log.Date,
			"notes":     log.Notes,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": log.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a nutrition log.
func (r *mongoNutritionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes all nutrition logs owned by a user (profile cascade).
func (r *mongoNutritionRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// EnsureNutritionIndexes creates necessary indexes for the nutrition collection.
func EnsureNutritionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "mealType", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithError(err).WithField("collection", collection.Name()).Error("failed to create indexes")
	}
}
