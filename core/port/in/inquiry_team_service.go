package in

import (
	"context"

	"inquiry_server/core/domain"

	"github.com/google/uuid"
)

type TeamService interface {
	ListMembers(ctx context.Context) ([]*domain.User, error)
	GetMember(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
