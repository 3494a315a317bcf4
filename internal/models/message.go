package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage represents a stored contact-form submission
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Read      bool               `bson:"read" json:"read"`
}

// MessageListOptions carries filter and pagination parameters for listing messages.
// Read of nil means no filter on the read flag.
type MessageListOptions struct {
	Read  *bool
	Limit int64
	Skip  int64
}

// MessageList is the paged listing response. Total counts every document
// matching the filter regardless of Limit/Skip so callers can compute
// whether more pages exist.
type MessageList struct {
	Messages []ContactMessage `json:"messages"`
	Total    int64            `json:"total"`
	Limit    int64            `json:"limit"`
	Skip     int64            `json:"skip"`
}
