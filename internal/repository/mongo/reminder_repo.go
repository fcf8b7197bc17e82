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

const reminderCollectionName = "reminders"

// mongoReminderRepository implements repository.ReminderRepository using MongoDB.
type mongoReminderRepository struct {
	collection *mongo.Collection
}

// NewMongoReminderRepository creates a new instance of mongoReminderRepository.
func NewMongoReminderRepository(db *mongo.Database) repository.ReminderRepository {
	return &mongoReminderRepository{
		collection: db.Collection(reminderCollectionName),
	}
}

// Create inserts a new reminder.
func (r *mongoReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (primitive.ObjectID, error) {
	reminder.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, reminder)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single reminder.
func (r *mongoReminderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reminder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// GetByUserID retrieves all reminders for a user, newest date first.
func (r *mongoReminderRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []domain.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Update replaces the mutable fields of a reminder. Rescheduling clears the
// notified flag so the scanner can fire again at the new time.
func (r *mongoReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	update := bson.M{
		"$set": bson.M{
			"title":     reminder.Title,
			"date":      reminder.Date,
			"type":      reminder.Type,
			"category":  reminder.Category,
			"priority":  reminder.Priority,
			"isActive":  reminder.IsActive,
			"notified":  reminder.Notified,
			"notes":     reminder.Notes,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": reminder.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetActive toggles only the isActive flag, returning the updated document.
func (r *mongoReminderRepository) SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) (*domain.Reminder, error) {
	update := bson.M{
		"$set": bson.M{
			"isActive":  isActive,
			"updatedAt": time.Now().UTC(),
		},
	}

	var reminder domain.Reminder
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&reminder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// Delete removes a reminder and returns the deleted document so the caller
// can reference it in the notification side effect.
func (r *mongoReminderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&reminder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// FindDue returns active, un-notified reminders scheduled at or before now.
func (r *mongoReminderRepository) FindDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	filter := bson.M{
		"isActive": true,
		"notified": false,
		"date":     bson.M{"$lte": now},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []domain.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkNotified flags a reminder as already fired.
func (r *mongoReminderRepository) MarkNotified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"notified":  true,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureReminderIndexes creates necessary indexes for the reminders collection.
func EnsureReminderIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			// Scanner filter: active, un-notified, due.
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "notified", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithError(err).WithField("collection", collection.Name()).Error("failed to create indexes")
	}
}
