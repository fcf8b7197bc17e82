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

const notificationCollectionName = "notifications"

// mongoNotificationRepository implements repository.NotificationRepository using MongoDB.
type mongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new instance of mongoNotificationRepository.
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{
		collection: db.Collection(notificationCollectionName),
	}
}

// Create inserts a new notification. Date defaults to creation time when unset.
func (r *mongoNotificationRepository) Create(ctx context.Context, notification *domain.Notification) (primitive.ObjectID, error) {
	notification.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if notification.Date.IsZero() {
		notification.Date = now
	}
	notification.CreatedAt = now
	notification.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single notification.
func (r *mongoNotificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// GetByUserID retrieves the full notification history for a user, newest
// first. No pagination; clients slice what they display.
func (r *mongoNotificationRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []domain.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets isRead on a notification. Marking an already-read
// notification is a no-op, not an error.
func (r *mongoNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	update := bson.M{
		"$set": bson.M{
			"isRead":    true,
			"updatedAt": time.Now().UTC(),
		},
	}

	var notification domain.Notification
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// Delete removes a notification.
func (r *mongoNotificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureNotificationIndexes creates necessary indexes for the notifications collection.
func EnsureNotificationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithError(err).WithField("collection", collection.Name()).Error("failed to create indexes")
	}
}
