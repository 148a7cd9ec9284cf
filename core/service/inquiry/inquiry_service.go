// Package inquiry implements the inquiry use cases: mailbox ingestion,
// classification, assignment, replies and deletion.
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/core/service/classify"
	"inquiry_server/pkg/apperr"
	"inquiry_server/pkg/logger"

	"github.com/google/uuid"
)

const (
	fetchQuery    = "in:inbox is:unread"
	fetchPageSize = 50
	snippetLength = 200
)

type Service struct {
	inquiries out.InquiryRepository
	tags      out.TagRepository
	bodies    out.InquiryBodyRepository
	sent      out.SentEmailRepository
	users     out.UserRepository
	mail      out.MailProvider
	producer  out.MessageProducer
	pipeline  *classify.Pipeline
	log       *logger.Logger
}

func NewService(
	inquiries out.InquiryRepository,
	tags out.TagRepository,
	bodies out.InquiryBodyRepository,
	sent out.SentEmailRepository,
	users out.UserRepository,
	mail out.MailProvider,
	producer out.MessageProducer,
	pipeline *classify.Pipeline,
	log *logger.Logger,
) *Service {
	return &Service{
		inquiries: inquiries,
		tags:      tags,
		bodies:    bodies,
		sent:      sent,
		users:     users,
		mail:      mail,
		producer:  producer,
		pipeline:  pipeline,
		log:       log,
	}
}

// FetchFromMailbox pulls unseen messages from the shared inbox into the
// inquiry store and enqueues each new inquiry for classification. Returns
// the number of inquiries created.
func (s *Service) FetchFromMailbox(ctx context.Context, accountID uuid.UUID) (int, error) {
	messages, err := s.mail.FetchMessages(ctx, fetchQuery, fetchPageSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch messages: %w", err)
	}

	created := 0
	for _, msg := range messages {
		existing, err := s.inquiries.GetByExternalID(ctx, msg.ExternalID)
		if err != nil && !isNotFound(err) {
			return created, fmt.Errorf("failed to look up message %s: %w", msg.ExternalID, err)
		}
		if existing != nil {
			continue
		}

		inq := &domain.Inquiry{
			ID:             uuid.New(),
			EmailAccountID: accountID,
			ThreadID:       msg.ThreadID,
			ExternalID:     msg.ExternalID,
			FromEmail:      msg.FromEmail,
			FromName:       msg.FromName,
			Subject:        msg.Subject,
			Body:           snippet(msg.Body),
			Channel:        domain.ChannelEmail,
			Status:         domain.StatusNew,
			ReceivedAt:     msg.ReceivedAt,
		}
		if err := s.inquiries.Create(ctx, inq); err != nil {
			return created, fmt.Errorf("failed to store inquiry %s: %w", msg.ExternalID, err)
		}
		if err := s.bodies.Save(ctx, inq.ID, msg.Body); err != nil {
			s.log.WithError(err).Warn("failed to store inquiry body %s", inq.ID)
		}
		if err := s.producer.PublishClassify(ctx, &out.ClassifyJob{InquiryID: inq.ID.String()}); err != nil {
			s.log.WithError(err).Warn("failed to enqueue classification for %s", inq.ID)
		}
		created++
	}

	s.log.WithField("created", created).Info("mailbox fetch completed")
	return created, nil
}

func (s *Service) GetInquiry(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	return s.inquiries.GetByID(ctx, id)
}

// GetInquiryBody loads the full body from the body store, falling back to
// the stored snippet when the body store has no document.
func (s *Service) GetInquiryBody(ctx context.Context, id uuid.UUID) (string, error) {
	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	body, err := s.bodies.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return inq.Body, nil
		}
		return "", fmt.Errorf("failed to load inquiry body: %w", err)
	}
	return body, nil
}

func (s *Service) ListInquiries(ctx context.Context, filter *domain.InquiryFilter) ([]*domain.Inquiry, int, error) {
	if filter == nil {
		filter = &domain.InquiryFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.inquiries.List(ctx, filter)
}

func (s *Service) GetTags(ctx context.Context, id uuid.UUID) (*domain.ClassificationResult, error) {
	if _, err := s.inquiries.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.tags.GetByInquiry(ctx, id)
}

// Categorize runs the classification pipeline over a stored inquiry and
// upserts the resulting tags. Re-running is idempotent: the upserts never
// duplicate rows and the pipeline itself is deterministic.
func (s *Service) Categorize(ctx context.Context, id uuid.UUID) (*domain.ClassificationResult, error) {
	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := s.bodies.Get(ctx, id)
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to load inquiry body: %w", err)
		}
		body = inq.Body
	}

	result := s.pipeline.Classify(inq.Subject, body)

	if err := s.tags.UpsertCategories(ctx, id, result.Categories); err != nil {
		return nil, fmt.Errorf("failed to save category tags: %w", err)
	}
	if err := s.tags.UpsertCountries(ctx, id, result.Countries); err != nil {
		return nil, fmt.Errorf("failed to save country tags: %w", err)
	}

	s.log.WithFields(map[string]any{
		"inquiry_id": id.String(),
		"categories": len(result.Categories),
		"countries":  len(result.Countries),
	}).Info("inquiry classified")
	return &result, nil
}

func (s *Service) Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	if userID != nil {
		if _, err := s.users.GetByID(ctx, *userID); err != nil {
			return err
		}
	}
	if err := s.inquiries.UpdateAssignee(ctx, id, userID); err != nil {
		return err
	}
	if userID != nil {
		return s.inquiries.UpdateStatus(ctx, id, domain.StatusInProgress)
	}
	return nil
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error {
	switch status {
	case domain.StatusNew, domain.StatusInProgress, domain.StatusReplied, domain.StatusClosed:
	default:
		return apperr.InvalidInput("status", "unknown status")
	}
	return s.inquiries.UpdateStatus(ctx, id, status)
}

// Reply sends a response on the inquiry's thread, records the sent email
// and marks the inquiry replied.
func (s *Service) Reply(ctx context.Context, id uuid.UUID, userID *uuid.UUID, req *in.ReplyRequest) (*domain.SentEmail, error) {
	if req == nil || strings.TrimSpace(req.Body) == "" {
		return nil, apperr.InvalidInput("body", "reply body is required")
	}

	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subject := inq.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}

	externalID, err := s.mail.Send(ctx, &out.OutgoingMessage{
		ThreadID:  inq.ThreadID,
		InReplyTo: inq.ExternalID,
		To:        inq.FromEmail,
		Subject:   subject,
		Body:      req.Body,
		IsHTML:    req.IsHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send reply: %w", err)
	}

	sentEmail := &domain.SentEmail{
		ID:         uuid.New(),
		ThreadID:   inq.ThreadID,
		ExternalID: externalID,
		ToEmail:    inq.FromEmail,
		Subject:    subject,
		SentBy:     userID,
	}
	if err := s.sent.Create(ctx, sentEmail); err != nil {
		return nil, fmt.Errorf("failed to record sent email: %w", err)
	}

	if err := s.inquiries.UpdateStatus(ctx, id, domain.StatusReplied); err != nil {
		s.log.WithError(err).Warn("failed to mark inquiry %s replied", id)
	}
	return sentEmail, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.inquiries.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.tags.DeleteByInquiry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}
	if err := s.bodies.Delete(ctx, id); err != nil && !isNotFound(err) {
		s.log.WithError(err).Warn("failed to delete inquiry body %s", id)
	}
	return s.inquiries.Delete(ctx, id)
}

func snippet(body string) string {
	plain := strings.TrimSpace(classify.StripMarkup(body))
	if len(plain) > snippetLength {
		return plain[:snippetLength]
	}
	return plain
}

func isNotFound(err error) bool {
	var appErr *apperr.AppError
	return errors.As(err, &appErr) && appErr.Code == apperr.CodeNotFound
}
