package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a write-once testimonial. Rating is stored as the star
// glyph string the form submits. The listing is public.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Rating    string             `bson:"rating" json:"rating"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
