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

// ShipmentHandler handles shipment API endpoints.
type ShipmentHandler struct {
	service in.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service in.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Register registers shipment routes.
func (h *ShipmentHandler) Register(app fiber.Router) {
	sh := app.Group("/shipments")
	sh.Post("/", h.Create)
	sh.Get("/", h.List)
	sh.Get("/:id", h.Get)
	sh.Patch("/:id/status", h.SetStatus)
	sh.Post("/:id/inquiries/:inquiryID", h.LinkInquiry)
	sh.Delete("/:id/inquiries/:inquiryID", h.UnlinkInquiry)
	sh.Delete("/:id", h.Delete)
}

// ShipmentResponse is the API shape of a shipment.
type ShipmentResponse struct {
	ID          uuid.UUID   `json:"id"`
	Reference   string      `json:"reference"`
	Origin      string      `json:"origin,omitempty"`
	Destination string      `json:"destination,omitempty"`
	Status      string      `json:"status"`
	ETA         *time.Time  `json:"eta,omitempty"`
	InquiryIDs  []uuid.UUID `json:"inquiry_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toShipmentResponse(s *domain.Shipment) *ShipmentResponse {
	inquiryIDs := s.InquiryIDs
	if inquiryIDs == nil {
		inquiryIDs = []uuid.UUID{}
	}
	return &ShipmentResponse{
		ID:          s.ID,
		Reference:   s.Reference,
		Origin:      s.Origin,
		Destination: s.Destination,
		Status:      string(s.Status),
		ETA:         s.ETA,
		InquiryIDs:  inquiryIDs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Create registers a new shipment.
// POST /shipments
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var req in.CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	shipment, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return HandleError(c, err)
	}
	return response.Created(c, toShipmentResponse(shipment))
}

// List returns shipments, newest first.
// GET /shipments?limit=20&offset=0
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	pagination := response.GetPagination(c, 20, 100)

	shipments, total, err := h.service.List(c.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		return HandleError(c, err)
	}

	items := make([]*ShipmentResponse, len(shipments))
	for i, s := range shipments {
		items[i] = toShipmentResponse(s)
	}

	return response.OKWithMeta(c, items, &response.Meta{
		Total:    total,
		PageSize: pagination.Limit,
		HasMore:  pagination.Offset+pagination.Limit < total,
	})
}

// Get returns one shipment.
// GET /shipments/:id
func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	shipment, err := h.service.Get(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, toShipmentResponse(shipment))
}

// SetStatus moves a shipment to a new transit status.
// PATCH /shipments/:id/status
func (h *ShipmentHandler) SetStatus(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return HandleError(c, apperr.BadRequest("invalid request body"))
	}

	if err := h.service.SetStatus(c.Context(), id, domain.ShipmentStatus(req.Status)); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}

// LinkInquiry attaches an inquiry to the shipment.
// POST /shipments/:id/inquiries/:inquiryID
func (h *ShipmentHandler) LinkInquiry(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}
	inquiryID, err := ParamUUID(c, "inquiryID")
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.service.LinkInquiry(c.Context(), id, inquiryID); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}

// UnlinkInquiry detaches an inquiry from the shipment.
// DELETE /shipments/:id/inquiries/:inquiryID
func (h *ShipmentHandler) UnlinkInquiry(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}
	inquiryID, err := ParamUUID(c, "inquiryID")
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.service.UnlinkInquiry(c.Context(), id, inquiryID); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}

// Delete removes a shipment.
// DELETE /shipments/:id
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return HandleError(c, err)
	}
	return response.NoContent(c)
}
