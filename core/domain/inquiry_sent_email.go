package domain

import (
	"time"

	"github.com/google/uuid"
)

// SentEmail records one outbound reply sent from the shared inbox.
// Response-time analytics pair these with inquiries by thread ID.
type SentEmail struct {
	ID         uuid.UUID
	ThreadID   string
	ExternalID string
	ToEmail    string
	Subject    string
	SentBy     *uuid.UUID
	SentAt     time.Time
}
