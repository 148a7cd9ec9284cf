package http

import (
	"time"

	"inquiry_server/core/domain"
	"inquiry_server/core/port/in"
	"inquiry_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TeamHandler lists team members for assignment pickers.
type TeamHandler struct {
	service in.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service in.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// Register registers team routes.
func (h *TeamHandler) Register(app fiber.Router) {
	team := app.Group("/team")
	team.Get("/", h.List)
	team.Get("/:id", h.Get)
}

// MemberResponse is the API shape of a team member.
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toMemberResponse(u *domain.User) *MemberResponse {
	return &MemberResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// List returns all team members.
// GET /team
func (h *TeamHandler) List(c *fiber.Ctx) error {
	members, err := h.service.ListMembers(c.Context())
	if err != nil {
		return HandleError(c, err)
	}

	items := make([]*MemberResponse, len(members))
	for i, m := range members {
		items[i] = toMemberResponse(m)
	}
	return response.OK(c, items)
}

// Get returns one team member.
// GET /team/:id
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	member, err := h.service.GetMember(c.Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return response.OK(c, toMemberResponse(member))
}
