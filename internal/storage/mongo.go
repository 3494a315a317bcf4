// Package storage manages the MongoDB client lifecycle
package storage

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names within the Assets database
const (
	CollectionPodcasts = "podcasts"
	CollectionVideos   = "videos"
	CollectionMessages = "messages"
)

// Store is the process-wide handle to the MongoDB deployment. It is
// constructed once at startup and shared across all requests; the store
// itself handles concurrency control of individual document writes.
type Store struct {
	client    *mongo.Client
	db        *mongo.Database
	dbName    string
	connected atomic.Bool
	logger    *zap.Logger
}

// New creates the client for the given connection string and database
// name. The driver connects lazily; call Connect to verify reachability
// and mark the store ready.
func New(uri, dbName string, logger *zap.Logger) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
		dbName: dbName,
		logger: logger,
	}, nil
}

// Connect verifies the deployment is reachable and marks the store ready.
// On failure the store stays in the disconnected state and every data
// operation short-circuits; the process keeps running so the health
// endpoint can report the problem.
func (s *Store) Connect(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s.connected.Store(true)
	s.logger.Info("connected to MongoDB",
		zap.String("database", s.dbName),
		zap.Strings("collections", s.Collections()),
	)
	return nil
}

// Disconnect closes the connection
func (s *Store) Disconnect(ctx context.Context) error {
	s.connected.Store(false)
	return s.client.Disconnect(ctx)
}

// Connected reports whether the initial connection succeeded
func (s *Store) Connected() bool {
	return s.connected.Load()
}

// Name returns the database name
func (s *Store) Name() string {
	return s.dbName
}

// Collections returns the collection names served by this API
func (s *Store) Collections() []string {
	return []string{CollectionPodcasts, CollectionVideos, CollectionMessages}
}

// Collection returns a handle to a named collection
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// EnsureIndexes creates the indexes the query patterns rely on: messages
// are listed by createdAt descending and filtered by the read flag.
// Index creation is idempotent; failures are reported but non-fatal.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if !s.Connected() {
		return models.ErrStoreUnavailable
	}

	messages := s.Collection(CollectionMessages)
	_, err := messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "read", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	return nil
}

// Stats gathers the debug snapshot: which collections exist, how many
// documents each holds, and the field names of one sample media document.
func (s *Store) Stats(ctx context.Context) (*models.DebugInfo, error) {
	if !s.Connected() {
		return nil, models.ErrStoreUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	info := &models.DebugInfo{
		Connection: models.DebugConnection{
			Database:  s.dbName,
			Connected: true,
		},
		Collections: models.DebugCollections{
			All: names,
		},
	}

	for _, name := range names {
		switch name {
		case CollectionPodcasts:
			info.Collections.HasPodcasts = true
		case CollectionVideos:
			info.Collections.HasVideos = true
		}
	}

	if info.Collections.HasPodcasts {
		count, err := s.Collection(CollectionPodcasts).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("failed to count podcasts: %w", err)
		}
		info.Collections.PodcastsCount = count
		info.Samples.PodcastFields, err = s.sampleFields(ctx, CollectionPodcasts)
		if err != nil {
			return nil, err
		}
	}

	if info.Collections.HasVideos {
		count, err := s.Collection(CollectionVideos).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("failed to count videos: %w", err)
		}
		info.Collections.VideosCount = count
		info.Samples.VideoFields, err = s.sampleFields(ctx, CollectionVideos)
		if err != nil {
			return nil, err
		}
	}

	count, err := s.Collection(CollectionMessages).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	info.Collections.MessagesCount = count

	return info, nil
}

// sampleFields returns the field names of one document from the collection,
// nil when the collection is empty
func (s *Store) sampleFields(ctx context.Context, collection string) ([]string, error) {
	var doc bson.D
	err := s.Collection(collection).FindOne(ctx, bson.D{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sample %s: %w", collection, err)
	}

	fields := make([]string, 0, len(doc))
	for _, elem := range doc {
		fields = append(fields, elem.Key)
	}
	return fields, nil
}
