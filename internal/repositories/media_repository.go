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
	"go.uber.org/zap"
)

type mediaRepository struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewMediaRepository creates a new instance of the MediaRepository interface
func NewMediaRepository(store *storage.Store, logger *zap.Logger) *mediaRepository {
	return &mediaRepository{
		store:  store,
		logger: logger,
	}
}

// GetAll retrieves every document in the collection for the given media
// kind. An empty collection yields an empty slice, not an error. Ordering
// is applied at the service layer, not here.
func (r *mediaRepository) GetAll(ctx context.Context, kind models.MediaKind) ([]models.MediaEntry, error) {
	if !r.store.Connected() {
		return nil, models.ErrStoreUnavailable
	}

	coll := r.store.Collection(kind.Collection())
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		r.logger.Error("failed to query media collection",
			zap.String("collection", kind.Collection()), zap.Error(err))
		return nil, fmt.Errorf("failed to query %s: %w", kind.Collection(), err)
	}

	entries := make([]models.MediaEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		r.logger.Error("failed to decode media documents",
			zap.String("collection", kind.Collection()), zap.Error(err))
		return nil, fmt.Errorf("failed to decode %s: %w", kind.Collection(), err)
	}

	return entries, nil
}

// GetByID retrieves a single document by identifier, using the two-stage
// lookup from idFilter
func (r *mediaRepository) GetByID(ctx context.Context, kind models.MediaKind, id string) (*models.MediaEntry, error) {
	if !r.store.Connected() {
		return nil, models.ErrStoreUnavailable
	}

	coll := r.store.Collection(kind.Collection())

	var entry models.MediaEntry
	err := coll.FindOne(ctx, idFilter(id)).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to query media document",
			zap.String("collection", kind.Collection()), zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to query %s: %w", kind.Collection(), err)
	}

	return &entry, nil
}

// idFilter builds the two-stage identifier lookup: identifiers that parse
// as ObjectIDs query the native key, everything else queries _id as a
// literal string. Legacy documents carry plain string keys.
func idFilter(id string) bson.D {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.D{{Key: "_id", Value: oid}}
	}
	return bson.D{{Key: "_id", Value: id}}
}
