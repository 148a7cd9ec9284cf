package persistence

import (
	"context"
	"fmt"
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// =============================================================================
// Sent Email Adapter
// =============================================================================

// SentEmailAdapter implements out.SentEmailRepository.
type SentEmailAdapter struct {
	db *sqlx.DB
}

// NewSentEmailAdapter creates a new SentEmailAdapter.
func NewSentEmailAdapter(db *sqlx.DB) *SentEmailAdapter {
	return &SentEmailAdapter{db: db}
}

type sentEmailRow struct {
	ID         uuid.UUID     `db:"id"`
	ThreadID   string        `db:"thread_id"`
	ExternalID string        `db:"external_id"`
	ToEmail    string        `db:"to_email"`
	Subject    string        `db:"subject"`
	SentBy     uuid.NullUUID `db:"sent_by"`
	SentAt     time.Time     `db:"sent_at"`
}

func (r *sentEmailRow) toEntity() *domain.SentEmail {
	sent := &domain.SentEmail{
		ID:         r.ID,
		ThreadID:   r.ThreadID,
		ExternalID: r.ExternalID,
		ToEmail:    r.ToEmail,
		Subject:    r.Subject,
		SentAt:     r.SentAt,
	}
	if r.SentBy.Valid {
		sent.SentBy = &r.SentBy.UUID
	}
	return sent
}

// Create records an outbound reply.
func (a *SentEmailAdapter) Create(ctx context.Context, sent *domain.SentEmail) error {
	query := `
		INSERT INTO sent_emails (id, thread_id, external_id, to_email, subject, sent_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING sent_at`

	err := a.db.QueryRowContext(ctx, query,
		sent.ID, sent.ThreadID, sent.ExternalID, sent.ToEmail, sent.Subject, nullUUID(sent.SentBy),
	).Scan(&sent.SentAt)

	if err != nil {
		return fmt.Errorf("failed to create sent email: %w", err)
	}
	return nil
}

// ListByThread returns replies on one thread, oldest first.
func (a *SentEmailAdapter) ListByThread(ctx context.Context, threadID string) ([]*domain.SentEmail, error) {
	var rows []sentEmailRow
	query := `SELECT * FROM sent_emails WHERE thread_id = $1 ORDER BY sent_at`

	if err := a.db.SelectContext(ctx, &rows, query, threadID); err != nil {
		return nil, fmt.Errorf("failed to list sent emails: %w", err)
	}

	items := make([]*domain.SentEmail, len(rows))
	for i, row := range rows {
		items[i] = row.toEntity()
	}
	return items, nil
}

// FirstResponseTimes averages, per assignee, the delay between an inquiry's
// arrival and the first reply on its thread. Inquiries with no reply yet are
// excluded rather than counted as infinite.
func (a *SentEmailAdapter) FirstResponseTimes(ctx context.Context) ([]out.AssigneeResponseTime, error) {
	query := `
		SELECT u.id AS user_id, u.name AS user_name,
		       AVG(EXTRACT(EPOCH FROM fr.first_sent_at - i.received_at)) AS avg_seconds,
		       COUNT(*) AS replies
		FROM inquiries i
		JOIN users u ON u.id = i.assigned_to
		JOIN LATERAL (
			SELECT MIN(s.sent_at) AS first_sent_at
			FROM sent_emails s
			WHERE s.thread_id = i.thread_id AND s.sent_at > i.received_at
		) fr ON fr.first_sent_at IS NOT NULL
		GROUP BY u.id, u.name
		ORDER BY avg_seconds`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute response times: %w", err)
	}
	defer rows.Close()

	var results []out.AssigneeResponseTime
	for rows.Next() {
		var item out.AssigneeResponseTime
		var avgSeconds float64
		if err := rows.Scan(&item.UserID, &item.UserName, &avgSeconds, &item.Replies); err != nil {
			return nil, fmt.Errorf("failed to scan response time row: %w", err)
		}
		item.AvgLatency = time.Duration(avgSeconds * float64(time.Second))
		results = append(results, item)
	}
	return results, rows.Err()
}
