package shipment

import (
	"context"
	"testing"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
)

// ---- fakes ----

type fakeShipmentRepo struct {
	byID map[uuid.UUID]*domain.Shipment
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{byID: make(map[uuid.UUID]*domain.Shipment)}
}

func (r *fakeShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeShipmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Shipment, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("shipment")
	}
	return s, nil
}

func (r *fakeShipmentRepo) List(_ context.Context, limit, offset int) ([]*domain.Shipment, int, error) {
	items := make([]*domain.Shipment, 0, len(r.byID))
	for _, s := range r.byID {
		items = append(items, s)
	}
	return items, len(items), nil
}

func (r *fakeShipmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	s, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("shipment")
	}
	s.Status = status
	return nil
}

func (r *fakeShipmentRepo) SetInquiryIDs(_ context.Context, id uuid.UUID, inquiryIDs []uuid.UUID) error {
	s, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("shipment")
	}
	s.InquiryIDs = inquiryIDs
	return nil
}

func (r *fakeShipmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("shipment")
	}
	delete(r.byID, id)
	return nil
}

type stubInquiryRepo struct {
	out.InquiryRepository
	existing map[uuid.UUID]bool
}

func (r *stubInquiryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	if !r.existing[id] {
		return nil, apperr.NotFound("inquiry")
	}
	return &domain.Inquiry{ID: id}, nil
}

// ---- tests ----

func TestCreateRequiresReference(t *testing.T) {
	svc := NewService(newFakeShipmentRepo(), &stubInquiryRepo{})

	_, err := svc.Create(context.Background(), &in.CreateShipmentRequest{Reference: "  "})
	if err == nil {
		t.Fatal("expected error for blank reference")
	}
	if apperr.AsAppError(err).Code != apperr.CodeInvalidInput {
		t.Fatalf("unexpected error code: %s", apperr.AsAppError(err).Code)
	}
}

func TestCreateDefaultsToBooked(t *testing.T) {
	repo := newFakeShipmentRepo()
	svc := NewService(repo, &stubInquiryRepo{})

	s, err := svc.Create(context.Background(), &in.CreateShipmentRequest{
		Reference:   "MAEU1234567",
		Origin:      "Busan",
		Destination: "Rotterdam",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Status != domain.ShipmentBooked {
		t.Errorf("status = %s, want %s", s.Status, domain.ShipmentBooked)
	}
	if _, ok := repo.byID[s.ID]; !ok {
		t.Error("shipment not persisted")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	repo := newFakeShipmentRepo()
	svc := NewService(repo, &stubInquiryRepo{})

	s, _ := svc.Create(context.Background(), &in.CreateShipmentRequest{Reference: "REF-1"})

	if err := svc.SetStatus(context.Background(), s.ID, domain.ShipmentStatus("teleported")); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if err := svc.SetStatus(context.Background(), s.ID, domain.ShipmentInTransit); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if repo.byID[s.ID].Status != domain.ShipmentInTransit {
		t.Errorf("status = %s, want in_transit", repo.byID[s.ID].Status)
	}
}

func TestLinkInquiryIsIdempotent(t *testing.T) {
	repo := newFakeShipmentRepo()
	inquiryID := uuid.New()
	inquiries := &stubInquiryRepo{existing: map[uuid.UUID]bool{inquiryID: true}}
	svc := NewService(repo, inquiries)

	s, _ := svc.Create(context.Background(), &in.CreateShipmentRequest{Reference: "REF-2"})

	if err := svc.LinkInquiry(context.Background(), s.ID, inquiryID); err != nil {
		t.Fatalf("LinkInquiry: %v", err)
	}
	if err := svc.LinkInquiry(context.Background(), s.ID, inquiryID); err != nil {
		t.Fatalf("LinkInquiry (second): %v", err)
	}
	if got := len(repo.byID[s.ID].InquiryIDs); got != 1 {
		t.Errorf("linked inquiries = %d, want 1", got)
	}
}

func TestLinkInquiryRejectsMissingInquiry(t *testing.T) {
	repo := newFakeShipmentRepo()
	svc := NewService(repo, &stubInquiryRepo{existing: map[uuid.UUID]bool{}})

	s, _ := svc.Create(context.Background(), &in.CreateShipmentRequest{Reference: "REF-3"})

	err := svc.LinkInquiry(context.Background(), s.ID, uuid.New())
	if err == nil {
		t.Fatal("expected error for missing inquiry")
	}
	if apperr.AsAppError(err).Code != apperr.CodeNotFound {
		t.Fatalf("unexpected error code: %s", apperr.AsAppError(err).Code)
	}
}

func TestUnlinkInquiry(t *testing.T) {
	repo := newFakeShipmentRepo()
	a, b := uuid.New(), uuid.New()
	inquiries := &stubInquiryRepo{existing: map[uuid.UUID]bool{a: true, b: true}}
	svc := NewService(repo, inquiries)

	s, _ := svc.Create(context.Background(), &in.CreateShipmentRequest{Reference: "REF-4"})
	svc.LinkInquiry(context.Background(), s.ID, a)
	svc.LinkInquiry(context.Background(), s.ID, b)

	if err := svc.UnlinkInquiry(context.Background(), s.ID, a); err != nil {
		t.Fatalf("UnlinkInquiry: %v", err)
	}
	got := repo.byID[s.ID].InquiryIDs
	if len(got) != 1 || got[0] != b {
		t.Errorf("linked inquiries = %v, want [%s]", got, b)
	}

	// Unlinking an inquiry that is not linked is a no-op.
	if err := svc.UnlinkInquiry(context.Background(), s.ID, a); err != nil {
		t.Fatalf("UnlinkInquiry (absent): %v", err)
	}
}
