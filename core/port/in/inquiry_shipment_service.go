package in

import (
	"context"
	"time"

	"inquiry_server/core/domain"

	"github.com/google/uuid"
)

type ShipmentService interface {
	Create(ctx context.Context, req *CreateShipmentRequest) (*domain.Shipment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Shipment, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error
	LinkInquiry(ctx context.Context, id, inquiryID uuid.UUID) error
	UnlinkInquiry(ctx context.Context, id, inquiryID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateShipmentRequest struct {
	Reference   string     `json:"reference"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	ETA         *time.Time `json:"eta,omitempty"`
}
