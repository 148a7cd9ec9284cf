package http

import (
	"inquiry_server/core/port/in"
	"inquiry_server/pkg/apperr"
	"inquiry_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GmailHandler triggers mailbox ingestion.
type GmailHandler struct {
	service in.InquiryService
}

// NewGmailHandler creates a new GmailHandler.
func NewGmailHandler(service in.InquiryService) *GmailHandler {
	return &GmailHandler{service: service}
}

// Register registers gmail routes.
func (h *GmailHandler) Register(app fiber.Router) {
	gm := app.Group("/gmail")
	gm.Post("/fetch", h.Fetch)
}

// FetchRequest selects the mailbox to pull from.
type FetchRequest struct {
	AccountID uuid.UUID `json:"account_id"`
}

// Fetch pulls unread messages from the shared inbox, stores them as
// inquiries and enqueues classification jobs.
// POST /gmail/fetch
func (h *GmailHandler) Fetch(c *fiber.Ctx) error {
	var req FetchRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	created, err := h.service.FetchFromMailbox(c.Context(), req.AccountID)
	if err != nil {
		return HandleError(c, err)
	}

	return response.OK(c, fiber.Map{"created": created})
}
