package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a team member of a company workspace.
type User struct {
	ID        uuid.UUID
	AuthID    string
	CompanyID uuid.UUID
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

// EmailAccount is a connected shared mailbox owned by a company.
type EmailAccount struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Email     string
	Provider  string
	CreatedAt time.Time
}
