// Package provider implements mail provider adapters.
package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"inquiry_server/core/port/out"
	"inquiry_server/pkg/apperr"

	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// =============================================================================
// Gmail Adapter
// =============================================================================

// GmailAdapter implements out.MailProvider for a single shared Gmail inbox.
type GmailAdapter struct {
	config *oauth2.Config
	token  *oauth2.Token
	cb     *gobreaker.CircuitBreaker
}

// GmailConfig holds Gmail configuration. The refresh token belongs to the
// shared inbox account and is obtained once via the OAuth consent flow.
type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RefreshToken string
}

// NewGmailAdapter creates a new Gmail adapter.
func NewGmailAdapter(cfg *GmailConfig) *GmailAdapter {
	config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			gmail.GmailReadonlyScope,
			gmail.GmailSendScope,
			gmail.GmailModifyScope,
		},
		Endpoint: google.Endpoint,
	}

	cbSettings := gobreaker.Settings{
		Name:        "gmail-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[CircuitBreaker] %s: state changed from %s to %s", name, from.String(), to.String())
		},
	}

	return &GmailAdapter{
		config: config,
		token:  &oauth2.Token{RefreshToken: cfg.RefreshToken},
		cb:     gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// =============================================================================
// Fetch
// =============================================================================

// FetchMessages lists messages matching query and resolves each to a full
// IncomingMessage.
func (a *GmailAdapter) FetchMessages(ctx context.Context, query string, max int) ([]*out.IncomingMessage, error) {
	svc, err := a.getService(ctx)
	if err != nil {
		return nil, err
	}

	maxResults := int64(100)
	if max > 0 {
		maxResults = int64(max)
	}

	req := svc.Users.Messages.List("me").MaxResults(maxResults)
	if query != "" {
		req = req.Q(query)
	}

	var resp *gmail.ListMessagesResponse
	cbErr := a.executeWithCircuitBreaker("ListMessages", func() error {
		var apiErr error
		resp, apiErr = req.Context(ctx).Do()
		return apiErr
	})
	if cbErr != nil {
		return nil, a.wrapError(cbErr, "failed to list messages")
	}

	return a.fetchMessagesParallel(ctx, svc, resp.Messages), nil
}

// fetchMessagesParallel resolves message references with bounded concurrency.
// Individual failures are dropped rather than failing the whole fetch.
func (a *GmailAdapter) fetchMessagesParallel(ctx context.Context, svc *gmail.Service, msgRefs []*gmail.Message) []*out.IncomingMessage {
	if len(msgRefs) == 0 {
		return nil
	}

	const maxConcurrency = 5
	const perMessageTimeout = 30 * time.Second

	type result struct {
		index int
		msg   *out.IncomingMessage
		err   error
	}

	results := make(chan result, len(msgRefs))
	sem := make(chan struct{}, maxConcurrency)

	for i, msgRef := range msgRefs {
		go func(idx int, id string) {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- result{index: idx, err: ctx.Err()}
				return
			}

			msgCtx, cancel := context.WithTimeout(ctx, perMessageTimeout)
			defer cancel()

			fullMsg, err := svc.Users.Messages.Get("me", id).Format("full").Context(msgCtx).Do()
			if err != nil {
				log.Printf("[GmailAdapter] failed to get message %s: %v", id, err)
				results <- result{index: idx, err: err}
				return
			}
			results <- result{index: idx, msg: a.convertMessage(fullMsg)}
		}(i, msgRef.Id)
	}

	messages := make([]*out.IncomingMessage, len(msgRefs))
	collected := 0
	for collected < len(msgRefs) {
		select {
		case r := <-results:
			collected++
			if r.err == nil {
				messages[r.index] = r.msg
			}
		case <-ctx.Done():
			collected = len(msgRefs)
		}
	}

	filtered := make([]*out.IncomingMessage, 0, len(messages))
	for _, msg := range messages {
		if msg != nil {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

func (a *GmailAdapter) convertMessage(msg *gmail.Message) *out.IncomingMessage {
	result := &out.IncomingMessage{
		ExternalID: msg.Id,
		ThreadID:   msg.ThreadId,
		Snippet:    msg.Snippet,
		ReceivedAt: time.Unix(msg.InternalDate/1000, 0),
	}

	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "Subject":
				result.Subject = h.Value
			case "From":
				result.FromName, result.FromEmail = parseEmailAddress(h.Value)
			}
		}
	}

	var body messageBody
	extractBody(msg.Payload, &body)
	// Prefer HTML so markup stripping sees the full body; some senders put
	// only a short summary in the text/plain part.
	if body.html != "" {
		result.Body = body.html
	} else {
		result.Body = body.text
	}
	return result
}

type messageBody struct {
	text string
	html string
}

func extractBody(part *gmail.MessagePart, body *messageBody) {
	if part == nil {
		return
	}

	if part.Body != nil && part.Body.Data != "" {
		if data, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
			switch part.MimeType {
			case "text/plain":
				body.text = string(data)
			case "text/html":
				body.html = string(data)
			}
		}
	}

	for _, p := range part.Parts {
		extractBody(p, body)
	}
}

func parseEmailAddress(s string) (name, email string) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", s
	}
	return addr.Name, addr.Address
}

// =============================================================================
// Send
// =============================================================================

// Send delivers a reply on an existing thread and returns the provider
// message ID.
func (a *GmailAdapter) Send(ctx context.Context, msg *out.OutgoingMessage) (string, error) {
	svc, err := a.getService(ctx)
	if err != nil {
		return "", err
	}

	raw := buildRawMessage(msg)
	gmailMsg := &gmail.Message{
		Raw:      base64.URLEncoding.EncodeToString([]byte(raw)),
		ThreadId: msg.ThreadID,
	}

	var sent *gmail.Message
	cbErr := a.executeWithCircuitBreaker("Send", func() error {
		var apiErr error
		sent, apiErr = svc.Users.Messages.Send("me", gmailMsg).Context(ctx).Do()
		return apiErr
	})
	if cbErr != nil {
		return "", a.wrapError(cbErr, "failed to send message")
	}

	return sent.Id, nil
}

func buildRawMessage(msg *out.OutgoingMessage) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))

	if msg.InReplyTo != "" {
		buf.WriteString(fmt.Sprintf("In-Reply-To: %s\r\n", msg.InReplyTo))
		buf.WriteString(fmt.Sprintf("References: %s\r\n", msg.InReplyTo))
	}

	contentType := "text/plain"
	if msg.IsHTML {
		contentType = "text/html"
	}
	buf.WriteString(fmt.Sprintf("Content-Type: %s; charset=UTF-8\r\n", contentType))
	buf.WriteString("\r\n")
	buf.WriteString(msg.Body)

	return buf.String()
}

// =============================================================================
// Service / Circuit Breaker
// =============================================================================

func (a *GmailAdapter) getService(ctx context.Context) (*gmail.Service, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	return gmail.NewService(ctx, option.WithTokenSource(
		a.config.TokenSource(ctx, a.token),
	))
}

// executeWithCircuitBreaker wraps an API call with circuit breaker protection.
// This prevents cascading failures when Gmail API is experiencing issues.
func (a *GmailAdapter) executeWithCircuitBreaker(operation string, fn func() error) error {
	_, err := a.cb.Execute(func() (interface{}, error) {
		if err := fn(); err != nil {
			if apiErr, ok := err.(*googleapi.Error); ok {
				switch apiErr.Code {
				case 500, 502, 503, 429:
					// Server-side errors trip the circuit breaker
					return nil, err
				case 400, 401, 403, 404:
					// Client errors must not open the circuit
					return nil, &nonCircuitError{err: err}
				}
			}
			return nil, err
		}
		return nil, nil
	})

	if nce, ok := err.(*nonCircuitError); ok {
		return nce.err
	}

	if err != nil {
		log.Printf("[GmailAdapter] circuit breaker error for %s: state=%s, err=%v",
			operation, a.cb.State().String(), err)
	}
	return err
}

// nonCircuitError wraps errors that should not trip the circuit breaker.
type nonCircuitError struct {
	err error
}

func (e *nonCircuitError) Error() string {
	return e.err.Error()
}

// IsCircuitOpen reports whether the breaker is open (calls will fail fast).
func (a *GmailAdapter) IsCircuitOpen() bool {
	return a.cb.State() == gobreaker.StateOpen
}

func (a *GmailAdapter) wrapError(err error, defaultMsg string) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 401, 403:
			return apperr.Unauthorized("mail provider rejected credentials")
		case 404:
			return apperr.NotFound("message")
		}
	}
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return apperr.ExternalError("gmail", err)
	}

	return fmt.Errorf("%s: %w", defaultMsg, err)
}
