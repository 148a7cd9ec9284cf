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
)

// =============================================================================
// User Adapter (team members)
// =============================================================================

// UserAdapter implements out.UserRepository.
type UserAdapter struct {
	db *sqlx.DB
}

// NewUserAdapter creates a new UserAdapter.
func NewUserAdapter(db *sqlx.DB) *UserAdapter {
	return &UserAdapter{db: db}
}

type userRow struct {
	ID        uuid.UUID      `db:"id"`
	AuthID    sql.NullString `db:"auth_id"`
	CompanyID uuid.NullUUID  `db:"company_id"`
	Email     string         `db:"email"`
	Name      string         `db:"name"`
	Role      sql.NullString `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *userRow) toEntity() *domain.User {
	return &domain.User{
		ID:        r.ID,
		AuthID:    r.AuthID.String,
		CompanyID: r.CompanyID.UUID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role.String,
		CreatedAt: r.CreatedAt,
	}
}

// GetByID retrieves a user by ID.
func (a *UserAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	query := `SELECT * FROM users WHERE id = $1`

	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return row.toEntity(), nil
}

// GetByEmail retrieves a user by email.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	query := `SELECT * FROM users WHERE email = $1`

	if err := a.db.GetContext(ctx, &row, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return row.toEntity(), nil
}

// List retrieves all team members.
func (a *UserAdapter) List(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	query := `SELECT * FROM users ORDER BY name`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toEntity()
	}
	return users, nil
}
