package http

import (
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/pkg/apperr"
	"inquiry_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// InquiryHandler handles inquiry API endpoints.
type InquiryHandler struct {
	service in.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(service in.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Register registers inquiry routes.
func (h *InquiryHandler) Register(app fiber.Router) {
	inq := app.Group("/inquiries")
	inq.Get("/", h.List)
	inq.Get("/:id", h.Get)
	inq.Get("/:id/body", h.GetBody)
	inq.Get("/:id/tags", h.GetTags)
	inq.Post("/:id/categorize", h.Categorize)
	inq.Patch("/:id/assign", h.Assign)
	inq.Patch("/:id/status", h.SetStatus)
	inq.Post("/:id/reply", h.Reply)
	inq.Delete("/:id", h.Delete)
}

// =============================================================================
// DTOs
// =============================================================================

// InquiryResponse is the API shape of an inquiry.
type InquiryResponse struct {
	ID             uuid.UUID  `json:"id"`
	EmailAccountID uuid.UUID  `json:"email_account_id"`
	ThreadID       string     `json:"thread_id,omitempty"`
	FromEmail      string     `json:"from_email"`
	FromName       string     `json:"from_name,omitempty"`
	Subject        string     `json:"subject"`
	Snippet        string     `json:"snippet,omitempty"`
	Channel        string     `json:"channel"`
	Status         string     `json:"status"`
	AssignedTo     *uuid.UUID `json:"assigned_to,omitempty"`
	ShipmentID     *uuid.UUID `json:"shipment_id,omitempty"`
	ReceivedAt     time.Time  `json:"received_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toInquiryResponse(inq *domain.Inquiry) *InquiryResponse {
	return &InquiryResponse{
		ID:             inq.ID,
		EmailAccountID: inq.EmailAccountID,
		ThreadID:       inq.ThreadID,
		FromEmail:      inq.FromEmail,
		FromName:       inq.FromName,
		Subject:        inq.Subject,
		Snippet:        inq.Body,
		Channel:        string(inq.Channel),
		Status:         string(inq.Status),
		AssignedTo:     inq.AssignedTo,
		ShipmentID:     inq.ShipmentID,
		ReceivedAt:     inq.ReceivedAt,
		CreatedAt:      inq.CreatedAt,
		UpdatedAt:      inq.UpdatedAt,
	}
}

// SentEmailResponse is the API shape of a recorded reply.
type SentEmailResponse struct {
	ID         uuid.UUID  `json:"id"`
	ThreadID   string     `json:"thread_id"`
	ExternalID string     `json:"external_id"`
	ToEmail    string     `json:"to_email"`
	Subject    string     `json:"subject"`
	SentBy     *uuid.UUID `json:"sent_by,omitempty"`
	SentAt     time.Time  `json:"sent_at"`
}

func toSentEmailResponse(sent *domain.SentEmail) *SentEmailResponse {
	return &SentEmailResponse{
		ID:         sent.ID,
		ThreadID:   sent.ThreadID,
		ExternalID: sent.ExternalID,
		ToEmail:    sent.ToEmail,
		Subject:    sent.Subject,
		SentBy:     sent.SentBy,
		SentAt:     sent.SentAt,
	}
}

// =============================================================================
// Handlers
// =============================================================================

// List returns inquiries, newest first.
// GET /inquiries?status=new&assigned_to=<uuid>&limit=20&offset=0
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	pagination := response.GetPagination(c, 20, 100)

	filter := &domain.InquiryFilter{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}

	if s := c.Query("status"); s != "" {
		status := domain.InquiryStatus(s)
		filter.Status = &status
	}
	if s := c.Query("assigned_to"); s != "" {
		assignee, err := uuid.Parse(s)
		if err != nil {
			return HandleError(c, apperr.InvalidInput("assigned_to", "must be a UUID"))
		}
		filter.AssignedTo = &assignee
	}

	inquiries, total, err := h.service.ListInquiries(c.Context(), filter)
	if err != nil {
		return HandleError(c, err)
	}

	items := make([]*InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		items[i] = toInquiryResponse(inq)
	}

	return response.OKWithMeta(c, items, &response.Meta{
		Total:    total,
		PageSize: pagination.Limit,
		HasMore:  pagination.Offset+pagination.Limit < total,
	})
}

// Get returns one inquiry.
// GET /inquiries/:id
func (h *InquiryHandler) Get(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	inq, err := h.service.GetInquiry(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, toInquiryResponse(inq))
}

// GetBody returns the full inquiry body from the body store.
// GET /inquiries/:id/body
func (h *InquiryHandler) GetBody(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	body, err := h.service.GetInquiryBody(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, fiber.Map{"body": body})
}

// GetTags returns persisted category and country tags.
// GET /inquiries/:id/tags
func (h *InquiryHandler) GetTags(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	tags, err := h.service.GetTags(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, tags)
}

// Categorize runs the classification pipeline and persists the tags.
// POST /inquiries/:id/categorize
func (h *InquiryHandler) Categorize(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	result, err := h.service.Categorize(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, result)
}

// Assign sets or clears the assignee.
// PATCH /inquiries/:id/assign
func (h *InquiryHandler) Assign(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	var req in.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	if err := h.service.Assign(c.Context(), id, req.UserID); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}

// SetStatus moves the inquiry to a new workflow state.
// PATCH /inquiries/:id/status
func (h *InquiryHandler) SetStatus(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	var req in.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	if err := h.service.SetStatus(c.Context(), id, domain.InquiryStatus(req.Status)); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}

// Reply sends a reply on the inquiry's thread and records it.
// POST /inquiries/:id/reply
func (h *InquiryHandler) Reply(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	var req in.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	var sentBy *uuid.UUID
	if userID, err := GetUserID(c); err == nil {
		sentBy = &userID
	}

	sent, err := h.service.Reply(c.Context(), id, sentBy, &req)
	if err != nil {
		return HandleError(c, err)
	}
	return response.Created(c, toSentEmailResponse(sent))
}

// Delete removes the inquiry, its tags and its stored body.
// DELETE /inquiries/:id
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}
