package usecases

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/metrics"
	"portfolio.backend/pkg/utils"
)

// Flash texts shown after a contact submission
const (
	ContactSuccessMessage = "Thank you for your message! I will get back to you soon."
	ContactMissingMessage = "Please fill in all fields."
)

// Contact field limits, matching the contact_messages columns
const (
	MaxContactNameLen    = 200
	MaxContactEmailLen   = 254
	MaxContactSubjectLen = 200
)

// ContactUsecase accepts public contact form submissions and serves the admin inbox
type ContactUsecase struct {
	messageRepo repositories.ContactMessageRepository
}

func NewContactUsecase(messageRepo repositories.ContactMessageRepository) *ContactUsecase {
	return &ContactUsecase{messageRepo: messageRepo}
}

// SubmitContact stores a message when all four fields are non-empty.
// Fields are stored verbatim; no trimming or format checks are applied.
func (u *ContactUsecase) SubmitContact(ctx context.Context, input entities.ContactInput) (*entities.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		metrics.IncContact(metrics.ContactRejected)
		return nil, domainerrors.Validation(ContactMissingMessage)
	}
	if err := checkContactLengths(input); err != nil {
		metrics.IncContact(metrics.ContactRejected)
		return nil, err
	}

	msg := &entities.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	metrics.IncContact(metrics.ContactAccepted)
	logger.Info(ctx, "Contact message received",
		zap.String("id", msg.ID.String()),
		zap.String("subject", msg.Subject),
	)
	return msg, nil
}

// ListMessages returns one inbox page, newest first
func (u *ContactUsecase) ListMessages(ctx context.Context, filter entities.ContactMessageFilter) ([]*entities.ContactMessage, utils.PaginationMeta, error) {
	pagination := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page, filter.Limit = pagination.Page, pagination.Limit

	items, total, err := u.messageRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return items, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}

func (u *ContactUsecase) GetMessage(ctx context.Context, id uuid.UUID) (*entities.ContactMessage, error) {
	return u.messageRepo.GetByID(ctx, id)
}

func (u *ContactUsecase) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	return u.messageRepo.SetRead(ctx, id, isRead)
}

func (u *ContactUsecase) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return u.messageRepo.Delete(ctx, id)
}

// InboxStats summarizes the inbox
type InboxStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

func (u *ContactUsecase) Stats(ctx context.Context) (*InboxStats, error) {
	total, err := u.messageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := u.messageRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &InboxStats{Total: total, Unread: unread}, nil
}

func checkContactLengths(input entities.ContactInput) error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"Name", input.Name, MaxContactNameLen},
		{"Email", input.Email, MaxContactEmailLen},
		{"Subject", input.Subject, MaxContactSubjectLen},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return domainerrors.Validation(fmt.Sprintf("%s must be at most %d characters.", l.field, l.max))
		}
	}
	return nil
}
