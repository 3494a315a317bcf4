package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangweilong/personal-website-backend/internal/models"
	"github.com/huangweilong/personal-website-backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type messageRepository struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewMessageRepository creates a new instance of the MessageRepository interface
func NewMessageRepository(store *storage.Store, logger *zap.Logger) *messageRepository {
	return &messageRepository{
		store:  store,
		logger: logger,
	}
}

// Insert stores a new contact message and returns the assigned identifier
// as a hex string
func (r *messageRepository) Insert(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if !r.store.Connected() {
		return "", models.ErrStoreUnavailable
	}

	coll := r.store.Collection(storage.CollectionMessages)
	result, err := coll.InsertOne(ctx, msg)
	if err != nil {
		r.logger.Error("failed to insert message", zap.Error(err))
		return "", fmt.Errorf("failed to insert message: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns one page of messages sorted by createdAt descending plus
// the total count of documents matching the filter ignoring pagination
func (r *messageRepository) List(ctx context.Context, opts models.MessageListOptions) ([]models.ContactMessage, int64, error) {
	if !r.store.Connected() {
		return nil, 0, models.ErrStoreUnavailable
	}

	filter := bson.D{}
	if opts.Read != nil {
		filter = bson.D{{Key: "read", Value: *opts.Read}}
	}

	coll := r.store.Collection(storage.CollectionMessages)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(opts.Limit).
		SetSkip(opts.Skip)

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		r.logger.Error("failed to query messages", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to query messages: %w", err)
	}

	messages := make([]models.ContactMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		r.logger.Error("failed to decode messages", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to decode messages: %w", err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		r.logger.Error("failed to count messages", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return messages, total, nil
}

// GetByID retrieves a single message by identifier, using the same
// two-stage lookup as the media collections
func (r *messageRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if !r.store.Connected() {
		return nil, models.ErrStoreUnavailable
	}

	coll := r.store.Collection(storage.CollectionMessages)

	var msg models.ContactMessage
	err := coll.FindOne(ctx, idFilter(id)).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to query message", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to query message: %w", err)
	}

	return &msg, nil
}

// SetRead sets the read flag on a message. The update is a single
// unconditional $set; it does not depend on a prior read of the flag, so
// repeating it with the same value is idempotent.
func (r *messageRepository) SetRead(ctx context.Context, id string, read bool) error {
	if !r.store.Connected() {
		return models.ErrStoreUnavailable
	}

	coll := r.store.Collection(storage.CollectionMessages)
	result, err := coll.UpdateOne(ctx, idFilter(id), bson.D{
		{Key: "$set", Value: bson.D{{Key: "read", Value: read}}},
	})
	if err != nil {
		r.logger.Error("failed to update message", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update message: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}

	return nil
}
