package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/metrics"
	"github.com/quantity262/Myweb/internal/models"
	repo "github.com/quantity262/Myweb/internal/repository"
)

const publicListLimit = 100

// MessageService owns the message board: create, public listing,
// soft delete and the admin superset listing.
type MessageService struct {
	messages repo.Messages
}

func NewMessageService(messages repo.Messages) *MessageService {
	return &MessageService{messages: messages}
}

// List returns up to 100 active messages, newest first, each joined with
// the author's current role (display only).
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messages.ListActive(ctx, publicListLimit)
}

// Create validates and persists a message with the author's username
// snapshotted at creation time. Content is stored trimmed; the length
// limit applies to the trimmed content.
func (s *MessageService) Create(ctx context.Context, authorID int64, authorUsername, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, apperr.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > models.MaxMessageLength {
		return 0, apperr.ErrContentTooLong
	}
	id, err := s.messages.Create(ctx, authorID, authorUsername, content)
	if err != nil {
		return 0, err
	}
	metrics.MessagesCreated.Inc()
	return id, nil
}

// SoftDelete marks a message deleted. Only admins may delete; deleted
// rows stay in the table and remain visible through AdminList.
func (s *MessageService) SoftDelete(ctx context.Context, id int64, requesterRole string) error {
	if err := checkRole(requesterRole, models.RoleAdmin); err != nil {
		return err
	}
	return s.messages.SoftDelete(ctx, id)
}

// AdminList returns every message regardless of status, newest first,
// joined with the author's email.
func (s *MessageService) AdminList(ctx context.Context) ([]models.Message, error) {
	return s.messages.ListAll(ctx)
}
