package http

import (
	"unicode"
	"unicode/utf8"

	"inquiry_server/core/port/in"
	"inquiry_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves the dashboard aggregates and the FAQ report.
type AnalyticsHandler struct {
	service in.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service in.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Register registers analytics routes.
func (h *AnalyticsHandler) Register(app fiber.Router) {
	an := app.Group("/analytics")
	an.Get("/summary", h.GetSummary)
	an.Get("/faqs", h.GetFaqs)
}

// GetSummary returns inquiry volume and tag distributions.
// GET /analytics/summary
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(c.Context())
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, summary)
}

// FaqEntry is one ranked FAQ group.
type FaqEntry struct {
	Question string `json:"question"`
	Count    int    `json:"count"`
	Variants []string `json:"variants"`
}

// GetFaqs returns the ranked FAQ clusters. Questions are normalized to
// lower case during extraction, so the display form is re-capitalized here.
// GET /analytics/faqs
func (h *AnalyticsHandler) GetFaqs(c *fiber.Ctx) error {
	clusters, err := h.service.GetFaqReport(c.Context())
	if err != nil {
		return HandleError(c, err)
	}

	entries := make([]FaqEntry, len(clusters))
	for i, cl := range clusters {
		entries[i] = FaqEntry{
			Question: capitalize(cl.Representative),
			Count:    cl.Count,
			Variants: cl.Members,
		}
	}
	return response.OK(c, entries)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
