// Package team exposes team member lookups for assignment and analytics.
package team

import (
	"context"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/out"

	"github.com/google/uuid"
)

type Service struct {
	users out.UserRepository
}

func NewService(users out.UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) ListMembers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
