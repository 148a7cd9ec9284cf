package out

import (
	"context"
	"time"
)

// =============================================================================
// Mail Provider (Gmail)
// =============================================================================

// MailProvider is the outbound port to the shared-inbox mail account.
type MailProvider interface {
	// FetchMessages lists unseen messages and resolves each to a full
	// IncomingMessage. max bounds the page size.
	FetchMessages(ctx context.Context, query string, max int) ([]*IncomingMessage, error)

	// Send delivers an outgoing reply and returns the provider message ID.
	Send(ctx context.Context, msg *OutgoingMessage) (string, error)
}

// IncomingMessage is a provider message normalized for ingestion.
type IncomingMessage struct {
	ExternalID string
	ThreadID   string
	FromEmail  string
	FromName   string
	Subject    string
	Body       string
	Snippet    string
	ReceivedAt time.Time
}

// OutgoingMessage is a reply to an existing thread.
type OutgoingMessage struct {
	ThreadID  string
	InReplyTo string
	To        string
	Subject   string
	Body      string
	IsHTML    bool
}
