// Package shipment implements shipment tracking and inquiry linkage.
package shipment

import (
	"context"
	"strings"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
)

type Service struct {
	shipments out.ShipmentRepository
	inquiries out.InquiryRepository
}

func NewService(shipments out.ShipmentRepository, inquiries out.InquiryRepository) *Service {
	return &Service{shipments: shipments, inquiries: inquiries}
}

func (s *Service) Create(ctx context.Context, req *in.CreateShipmentRequest) (*domain.Shipment, error) {
	if req == nil || strings.TrimSpace(req.Reference) == "" {
		return nil, apperr.InvalidInput("reference", "shipment reference is required")
	}

	shipment := &domain.Shipment{
		ID:          uuid.New(),
		Reference:   req.Reference,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      domain.ShipmentBooked,
		ETA:         req.ETA,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	return s.shipments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Shipment, int, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.shipments.List(ctx, limit, offset)
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	switch status {
	case domain.ShipmentBooked, domain.ShipmentInTransit, domain.ShipmentArrived, domain.ShipmentDelivered:
	default:
		return apperr.InvalidInput("status", "unknown status")
	}
	return s.shipments.UpdateStatus(ctx, id, status)
}

// LinkInquiry attaches an inquiry to a shipment. Linking twice is a no-op.
func (s *Service) LinkInquiry(ctx context.Context, id, inquiryID uuid.UUID) error {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.inquiries.GetByID(ctx, inquiryID); err != nil {
		return err
	}

	for _, linked := range shipment.InquiryIDs {
		if linked == inquiryID {
			return nil
		}
	}
	return s.shipments.SetInquiryIDs(ctx, id, append(shipment.InquiryIDs, inquiryID))
}

func (s *Service) UnlinkInquiry(ctx context.Context, id, inquiryID uuid.UUID) error {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	kept := make([]uuid.UUID, 0, len(shipment.InquiryIDs))
	for _, linked := range shipment.InquiryIDs {
		if linked != inquiryID {
			kept = append(kept, linked)
		}
	}
	if len(kept) == len(shipment.InquiryIDs) {
		return nil
	}
	return s.shipments.SetInquiryIDs(ctx, id, kept)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.shipments.Delete(ctx, id)
}
