package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

// MediaRepository is the interface that wraps methods for catalog data access
type MediaRepository interface {
	// GetAll retrieves every document of the given media kind in store order.
	// An empty collection yields an empty slice, not an error.
	GetAll(ctx context.Context, kind models.MediaKind) ([]models.MediaEntry, error)
	// GetByID retrieves a single document by identifier. Returns
	// models.ErrNotFound when no document matches.
	GetByID(ctx context.Context, kind models.MediaKind, id string) (*models.MediaEntry, error)
}

type mediaService struct {
	repo   MediaRepository
	logger *zap.Logger
}

// NewMediaService creates a new media catalog service
func NewMediaService(repo MediaRepository, logger *zap.Logger) *mediaService {
	return &mediaService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves all entries of the given kind sorted by date, newest
// first. Entries with a missing or unparseable date sort after all dated
// entries and keep their relative order from the store.
func (s *mediaService) List(ctx context.Context, kind models.MediaKind) ([]models.MediaEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid media kind: %s", kind)
	}

	entries, err := s.repo.GetAll(ctx, kind)
	if err != nil {
		s.logger.Error("failed to list media", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	sortByDateDesc(entries)
	return entries, nil
}

// GetByID retrieves a single entry of the given kind
func (s *mediaService) GetByID(ctx context.Context, kind models.MediaKind, id string) (*models.MediaEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid media kind: %s", kind)
	}
	if id == "" {
		return nil, models.ErrNotFound
	}

	entry, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// sortByDateDesc orders entries newest first. The sort is stable so ties
// (equal or missing dates) retain their relative order from the store.
func sortByDateDesc(entries []models.MediaEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return parseEntryDate(entries[i].Date).After(parseEntryDate(entries[j].Date))
	})
}

// dateLayouts are the formats catalog documents have been observed to
// carry: ISO dates with or without a time component, and slash-delimited
// year/month/day with or without zero padding.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/1/2",
}

// parseEntryDate interprets a stored date string best-effort. Absent or
// unparseable values map to the zero time so they sort after every valid
// date; they are never an error.
func parseEntryDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
