// Package persistence provides database adapters implementing outbound ports.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"
	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// =============================================================================
// Inquiry Adapter
// =============================================================================

// InquiryAdapter implements out.InquiryRepository over PostgreSQL.
type InquiryAdapter struct {
	db *sqlx.DB
}

// NewInquiryAdapter creates a new InquiryAdapter.
func NewInquiryAdapter(db *sqlx.DB) *InquiryAdapter {
	return &InquiryAdapter{db: db}
}

// inquiryRow represents the database row.
type inquiryRow struct {
	ID             uuid.UUID      `db:"id"`
	EmailAccountID uuid.UUID      `db:"email_account_id"`
	ThreadID       string         `db:"thread_id"`
	ExternalID     string         `db:"external_id"`
	FromEmail      string         `db:"from_email"`
	FromName       sql.NullString `db:"from_name"`
	Subject        string         `db:"subject"`
	Snippet        string         `db:"snippet"`
	Channel        string         `db:"channel"`
	Status         string         `db:"status"`
	AssignedTo     uuid.NullUUID  `db:"assigned_to"`
	ShipmentID     uuid.NullUUID  `db:"shipment_id"`
	ReceivedAt     time.Time      `db:"received_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *inquiryRow) toEntity() *domain.Inquiry {
	inq := &domain.Inquiry{
		ID:             r.ID,
		EmailAccountID: r.EmailAccountID,
		ThreadID:       r.ThreadID,
		ExternalID:     r.ExternalID,
		FromEmail:      r.FromEmail,
		FromName:       r.FromName.String,
		Subject:        r.Subject,
		Body:           r.Snippet,
		Channel:        domain.InquiryChannel(r.Channel),
		Status:         domain.InquiryStatus(r.Status),
		ReceivedAt:     r.ReceivedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.AssignedTo.Valid {
		inq.AssignedTo = &r.AssignedTo.UUID
	}
	if r.ShipmentID.Valid {
		inq.ShipmentID = &r.ShipmentID.UUID
	}
	return inq
}

// Create inserts a new inquiry.
func (a *InquiryAdapter) Create(ctx context.Context, inq *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, email_account_id, thread_id, external_id, from_email, from_name, subject, snippet, channel, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := a.db.QueryRowContext(ctx, query,
		inq.ID, inq.EmailAccountID, inq.ThreadID, inq.ExternalID,
		inq.FromEmail, nullString(inq.FromName), inq.Subject, inq.Body,
		string(inq.Channel), string(inq.Status), inq.ReceivedAt,
	).Scan(&inq.CreatedAt, &inq.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// GetByID retrieves an inquiry by ID.
func (a *InquiryAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	var row inquiryRow
	query := `SELECT * FROM inquiries WHERE id = $1`

	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("inquiry")
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return row.toEntity(), nil
}

// GetByExternalID retrieves an inquiry by the provider message ID.
func (a *InquiryAdapter) GetByExternalID(ctx context.Context, externalID string) (*domain.Inquiry, error) {
	var row inquiryRow
	query := `SELECT * FROM inquiries WHERE external_id = $1`

	if err := a.db.GetContext(ctx, &row, query, externalID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("inquiry")
		}
		return nil, fmt.Errorf("failed to get inquiry by external id: %w", err)
	}
	return row.toEntity(), nil
}

// Delete removes an inquiry.
func (a *InquiryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := a.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("inquiry")
	}
	return nil
}

// List retrieves inquiries matching a filter, newest first, plus the total.
func (a *InquiryAdapter) List(ctx context.Context, filter *domain.InquiryFilter) ([]*domain.Inquiry, int, error) {
	where := []string{"1=1"}
	args := []any{}

	if len(filter.EmailAccountIDs) > 0 {
		placeholders := make([]string, len(filter.EmailAccountIDs))
		for i, id := range filter.EmailAccountIDs {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		where = append(where, fmt.Sprintf("email_account_id IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		where = append(where, fmt.Sprintf("assigned_to = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM inquiries WHERE " + whereClause
	if err := a.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := fmt.Sprintf(
		"SELECT * FROM inquiries WHERE %s ORDER BY received_at DESC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args),
	)

	var rows []inquiryRow
	if err := a.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	items := make([]*domain.Inquiry, len(rows))
	for i, row := range rows {
		items[i] = row.toEntity()
	}
	return items, total, nil
}

// ListRecentIDs returns IDs of inquiries received after since, newest first.
func (a *InquiryAdapter) ListRecentIDs(ctx context.Context, since time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT id FROM inquiries WHERE received_at >= $1 ORDER BY received_at DESC LIMIT $2`

	if err := a.db.SelectContext(ctx, &ids, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent inquiry ids: %w", err)
	}
	return ids, nil
}

// UpdateAssignee sets or clears the assignee.
func (a *InquiryAdapter) UpdateAssignee(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	query := `UPDATE inquiries SET assigned_to = $2, updated_at = NOW() WHERE id = $1`

	result, err := a.db.ExecContext(ctx, query, id, nullUUID(userID))
	if err != nil {
		return fmt.Errorf("failed to update assignee: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("inquiry")
	}
	return nil
}

// UpdateStatus moves the inquiry to a new workflow status.
func (a *InquiryAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error {
	query := `UPDATE inquiries SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := a.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("inquiry")
	}
	return nil
}

// CountByMonth buckets inquiry volume by calendar month, oldest first.
func (a *InquiryAdapter) CountByMonth(ctx context.Context, months int) ([]out.PeriodCount, error) {
	query := `
		SELECT to_char(date_trunc('month', received_at), 'YYYY-MM') AS period, COUNT(*) AS count
		FROM inquiries
		WHERE received_at >= date_trunc('month', NOW()) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY 1
		ORDER BY 1`

	var buckets []out.PeriodCount
	if err := a.db.SelectContext(ctx, &buckets, query, months); err != nil {
		return nil, fmt.Errorf("failed to count by month: %w", err)
	}
	return buckets, nil
}

// CountByQuarter buckets inquiry volume by calendar quarter, oldest first.
func (a *InquiryAdapter) CountByQuarter(ctx context.Context, quarters int) ([]out.PeriodCount, error) {
	query := `
		SELECT to_char(date_trunc('quarter', received_at), 'YYYY-"Q"Q') AS period, COUNT(*) AS count
		FROM inquiries
		WHERE received_at >= date_trunc('quarter', NOW()) - ($1 - 1) * INTERVAL '3 months'
		GROUP BY 1
		ORDER BY 1`

	var buckets []out.PeriodCount
	if err := a.db.SelectContext(ctx, &buckets, query, quarters); err != nil {
		return nil, fmt.Errorf("failed to count by quarter: %w", err)
	}
	return buckets, nil
}

// CountByChannel counts inquiries per channel.
func (a *InquiryAdapter) CountByChannel(ctx context.Context) ([]out.LabelCount, error) {
	query := `SELECT channel AS label, COUNT(*) AS count FROM inquiries GROUP BY channel ORDER BY count DESC`

	var buckets []out.LabelCount
	if err := a.db.SelectContext(ctx, &buckets, query); err != nil {
		return nil, fmt.Errorf("failed to count by channel: %w", err)
	}
	return buckets, nil
}

// CountTotal counts all inquiries.
func (a *InquiryAdapter) CountTotal(ctx context.Context) (int, error) {
	var total int
	if err := a.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM inquiries`); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return total, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
