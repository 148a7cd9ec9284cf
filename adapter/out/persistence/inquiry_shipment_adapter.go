package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// =============================================================================
// Shipment Adapter
// =============================================================================

// ShipmentAdapter implements out.ShipmentRepository. Inquiry links are kept
// as a text[] column; the slice is small (a few inquiries per shipment).
type ShipmentAdapter struct {
	db *sqlx.DB
}

// NewShipmentAdapter creates a new ShipmentAdapter.
func NewShipmentAdapter(db *sqlx.DB) *ShipmentAdapter {
	return &ShipmentAdapter{db: db}
}

type shipmentRow struct {
	ID          uuid.UUID      `db:"id"`
	CompanyID   uuid.NullUUID  `db:"company_id"`
	Reference   string         `db:"reference"`
	Origin      sql.NullString `db:"origin"`
	Destination sql.NullString `db:"destination"`
	Status      string         `db:"status"`
	ETA         sql.NullTime   `db:"eta"`
	InquiryIDs  pq.StringArray `db:"inquiry_ids"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *shipmentRow) toEntity() (*domain.Shipment, error) {
	shipment := &domain.Shipment{
		ID:          r.ID,
		CompanyID:   r.CompanyID.UUID,
		Reference:   r.Reference,
		Origin:      r.Origin.String,
		Destination: r.Destination.String,
		Status:      domain.ShipmentStatus(r.Status),
		InquiryIDs:  make([]uuid.UUID, 0, len(r.InquiryIDs)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.ETA.Valid {
		shipment.ETA = &r.ETA.Time
	}
	for _, raw := range r.InquiryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid inquiry id %q on shipment %s: %w", raw, r.ID, err)
		}
		shipment.InquiryIDs = append(shipment.InquiryIDs, id)
	}
	return shipment, nil
}

func inquiryIDStrings(ids []uuid.UUID) pq.StringArray {
	raw := make(pq.StringArray, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	return raw
}

// Create inserts a new shipment.
func (a *ShipmentAdapter) Create(ctx context.Context, shipment *domain.Shipment) error {
	query := `
		INSERT INTO shipments (id, company_id, reference, origin, destination, status, eta, inquiry_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	var eta sql.NullTime
	if shipment.ETA != nil {
		eta = sql.NullTime{Time: *shipment.ETA, Valid: true}
	}

	err := a.db.QueryRowContext(ctx, query,
		shipment.ID, nullUUID(companyID(shipment)), shipment.Reference,
		nullString(shipment.Origin), nullString(shipment.Destination),
		string(shipment.Status), eta, inquiryIDStrings(shipment.InquiryIDs),
	).Scan(&shipment.CreatedAt, &shipment.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}
	return nil
}

// GetByID retrieves a shipment by ID.
func (a *ShipmentAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	var row shipmentRow
	query := `SELECT * FROM shipments WHERE id = $1`

	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("shipment")
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return row.toEntity()
}

// List retrieves shipments, newest first, plus the total.
func (a *ShipmentAdapter) List(ctx context.Context, limit, offset int) ([]*domain.Shipment, int, error) {
	var total int
	if err := a.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM shipments`); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	var rows []shipmentRow
	query := `SELECT * FROM shipments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := a.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}

	items := make([]*domain.Shipment, len(rows))
	for i, row := range rows {
		shipment, err := row.toEntity()
		if err != nil {
			return nil, 0, err
		}
		items[i] = shipment
	}
	return items, total, nil
}

// UpdateStatus moves the shipment to a new transit status.
func (a *ShipmentAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	query := `UPDATE shipments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := a.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update shipment status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("shipment")
	}
	return nil
}

// SetInquiryIDs replaces the linked inquiry list.
func (a *ShipmentAdapter) SetInquiryIDs(ctx context.Context, id uuid.UUID, inquiryIDs []uuid.UUID) error {
	query := `UPDATE shipments SET inquiry_ids = $2, updated_at = NOW() WHERE id = $1`

	result, err := a.db.ExecContext(ctx, query, id, inquiryIDStrings(inquiryIDs))
	if err != nil {
		return fmt.Errorf("failed to update shipment inquiries: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("shipment")
	}
	return nil
}

// Delete removes a shipment.
func (a *ShipmentAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := a.db.ExecContext(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("shipment")
	}
	return nil
}

func companyID(shipment *domain.Shipment) *uuid.UUID {
	if shipment.CompanyID == uuid.Nil {
		return nil
	}
	return &shipment.CompanyID
}
