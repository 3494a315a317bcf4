package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

// MessageRepository is the interface that wraps methods for contact message data access
type MessageRepository interface {
	// Insert stores a new message and returns the assigned identifier as a
	// hex string.
	Insert(ctx context.Context, msg *models.ContactMessage) (string, error)
	// List returns one page of messages sorted by createdAt descending plus
	// the total count of documents matching the filter ignoring pagination.
	List(ctx context.Context, opts models.MessageListOptions) ([]models.ContactMessage, int64, error)
	// GetByID retrieves a single message. Returns models.ErrNotFound when no
	// document matches.
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	// SetRead sets the read flag unconditionally. Returns models.ErrNotFound
	// when no document matches.
	SetRead(ctx context.Context, id string, read bool) error
}

// SubmissionMetrics records accepted contact submissions
type SubmissionMetrics interface {
	RecordContactSubmission()
}

const (
	defaultListLimit = 50
	defaultListSkip  = 0
)

// emailPattern is the same shape the contact form enforces: one "@", at
// least one "." in the domain part, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type messageService struct {
	repo    MessageRepository
	metrics SubmissionMetrics
	logger  *zap.Logger
}

// NewMessageService creates a new contact intake service
func NewMessageService(repo MessageRepository, metrics SubmissionMetrics, logger *zap.Logger) *messageService {
	return &messageService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Submit validates a contact submission and stores it. Validation failures
// are returned as *models.ValidationError and never reach the store. On
// success the assigned identifier is returned as a hex string.
func (s *messageService) Submit(ctx context.Context, name, email, message string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return "", models.NewValidationError("name, email, and message are required fields")
	}
	if !emailPattern.MatchString(email) {
		return "", models.NewValidationError("invalid email format")
	}

	msg := &models.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		Read:      false,
	}

	id, err := s.repo.Insert(ctx, msg)
	if err != nil {
		s.logger.Error("failed to store contact message", zap.Error(err))
		return "", err
	}

	s.metrics.RecordContactSubmission()
	s.logger.Info("new contact message received",
		zap.String("name", name),
		zap.String("email", email),
		zap.String("id", id),
	)
	return id, nil
}

// List returns a page of messages. Negative limit/skip fall back to the
// defaults; there is no enforced upper bound, the values are passed
// through to the store as-is.
func (s *messageService) List(ctx context.Context, opts models.MessageListOptions) (*models.MessageList, error) {
	if opts.Limit < 0 {
		opts.Limit = defaultListLimit
	}
	if opts.Skip < 0 {
		opts.Skip = defaultListSkip
	}

	messages, total, err := s.repo.List(ctx, opts)
	if err != nil {
		s.logger.Error("failed to list messages", zap.Error(err))
		return nil, err
	}

	return &models.MessageList{
		Messages: messages,
		Total:    total,
		Limit:    opts.Limit,
		Skip:     opts.Skip,
	}, nil
}

// GetByID retrieves a single message
func (s *messageService) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if id == "" {
		return nil, models.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// MarkRead sets the read flag on a message. The operation is idempotent:
// setting an already-set flag succeeds with the same resulting state.
func (s *messageService) MarkRead(ctx context.Context, id string, read bool) error {
	if id == "" {
		return models.ErrNotFound
	}

	if err := s.repo.SetRead(ctx, id, read); err != nil {
		if err != models.ErrNotFound {
			s.logger.Error("failed to mark message", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
