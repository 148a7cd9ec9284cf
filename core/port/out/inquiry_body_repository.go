package out

import (
	"context"

	"github.com/google/uuid"
)

// InquiryBodyRepository stores full inquiry bodies (MongoDB). Postgres keeps
// only a snippet; anything that needs the raw text goes through here.
type InquiryBodyRepository interface {
	Save(ctx context.Context, inquiryID uuid.UUID, body string) error
	Get(ctx context.Context, inquiryID uuid.UUID) (string, error)
	GetMany(ctx context.Context, inquiryIDs []uuid.UUID) (map[uuid.UUID]string, error)
	Delete(ctx context.Context, inquiryID uuid.UUID) error
}
