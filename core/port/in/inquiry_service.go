// Package in defines inbound ports (driving ports): the use cases the
// HTTP handlers and workers invoke.
package in

import (
	"context"

	"inquiry_server/core/domain"

	"github.com/google/uuid"
)

type InquiryService interface {
	// Ingestion
	FetchFromMailbox(ctx context.Context, accountID uuid.UUID) (int, error)

	// Read operations
	GetInquiry(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	GetInquiryBody(ctx context.Context, id uuid.UUID) (string, error)
	ListInquiries(ctx context.Context, filter *domain.InquiryFilter) ([]*domain.Inquiry, int, error)
	GetTags(ctx context.Context, id uuid.UUID) (*domain.ClassificationResult, error)

	// Classification
	Categorize(ctx context.Context, id uuid.UUID) (*domain.ClassificationResult, error)

	// Workflow
	Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error
	Reply(ctx context.Context, id uuid.UUID, userID *uuid.UUID, req *ReplyRequest) (*domain.SentEmail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReplyRequest struct {
	Body   string `json:"body"`
	IsHTML bool   `json:"is_html"`
}

type AssignRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
