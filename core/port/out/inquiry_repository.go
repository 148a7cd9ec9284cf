// Package out defines outbound ports (driven ports) for the application.
// These interfaces represent dependencies that the application needs.
package out

import (
	"context"
	"time"

	"inquiry_server/core/domain"

	"github.com/google/uuid"
)

// =============================================================================
// Inquiry Repository (PostgreSQL - metadata)
// =============================================================================

// InquiryRepository defines the outbound port for inquiry metadata
// persistence. Only metadata and a snippet live here; full bodies go to
// InquiryBodyRepository (MongoDB).
type InquiryRepository interface {
	// CRUD operations
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Query operations
	List(ctx context.Context, filter *domain.InquiryFilter) ([]*domain.Inquiry, int, error)
	ListRecentIDs(ctx context.Context, since time.Time, limit int) ([]uuid.UUID, error)

	// Status updates
	UpdateAssignee(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error

	// Statistics
	CountByMonth(ctx context.Context, months int) ([]PeriodCount, error)
	CountByQuarter(ctx context.Context, quarters int) ([]PeriodCount, error)
	CountByChannel(ctx context.Context) ([]LabelCount, error)
	CountTotal(ctx context.Context) (int, error)
}

// PeriodCount is one bucket of a time-series aggregate. Period is
// "2026-08" for months and "2026-Q3" for quarters.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// LabelCount is one bucket of a label aggregate (channel, category, country).
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// =============================================================================
// Tag Repository (classification results as association rows)
// =============================================================================

// TagRepository persists classification tags. Upserts must be idempotent so
// re-classifying an inquiry never duplicates rows.
type TagRepository interface {
	UpsertCategories(ctx context.Context, inquiryID uuid.UUID, categories []string) error
	UpsertCountries(ctx context.Context, inquiryID uuid.UUID, countries []string) error
	GetByInquiry(ctx context.Context, inquiryID uuid.UUID) (*domain.ClassificationResult, error)
	DeleteByInquiry(ctx context.Context, inquiryID uuid.UUID) error

	// Statistics
	CountByCategory(ctx context.Context, limit int) ([]LabelCount, error)
	CountByCountry(ctx context.Context, limit int) ([]LabelCount, error)
}

// =============================================================================
// Sent Email Repository (outbound replies, response-time analytics)
// =============================================================================

// SentEmailRepository persists outbound replies paired to inquiry threads.
type SentEmailRepository interface {
	Create(ctx context.Context, sent *domain.SentEmail) error
	ListByThread(ctx context.Context, threadID string) ([]*domain.SentEmail, error)

	// FirstResponseTimes returns, per assignee, the average delay between an
	// inquiry's arrival and the first reply in its thread.
	FirstResponseTimes(ctx context.Context) ([]AssigneeResponseTime, error)
}

// AssigneeResponseTime is the average first-response delay for one assignee.
type AssigneeResponseTime struct {
	UserID     uuid.UUID     `json:"user_id"`
	UserName   string        `json:"user_name"`
	AvgLatency time.Duration `json:"avg_latency"`
	Replies    int           `json:"replies"`
}

// =============================================================================
// Shipment Repository
// =============================================================================

// ShipmentRepository persists shipments and their inquiry links.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *domain.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Shipment, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error
	SetInquiryIDs(ctx context.Context, id uuid.UUID, inquiryIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// =============================================================================
// User Repository (team members)
// =============================================================================

// UserRepository reads team members for assignment and analytics.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
