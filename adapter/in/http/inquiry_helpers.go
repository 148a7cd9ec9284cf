// Package http implements the Fiber HTTP handlers.
package http

import (
	"net/http"

	"inquiry_server/pkg/apperr"
	"inquiry_server/pkg/logger"
	"inquiry_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user from the fiber context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDVal := c.Locals("user_id")
	if userIDVal == nil {
		return uuid.Nil, apperr.Unauthorized("")
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperr.Unauthorized("")
	}
	return userID, nil
}

// ParamUUID parses a UUID path parameter.
func ParamUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.InvalidInput(name, "must be a UUID")
	}
	return id, nil
}

// HandleError maps a service error to the response envelope. Internal
// errors are logged and returned without their cause.
func HandleError(c *fiber.Ctx, err error) error {
	appErr := apperr.AsAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.WithError(err).
			WithField("path", c.Path()).
			WithField("method", c.Method()).
			Error("request failed")
	}
	return response.Error(c, appErr.Status, appErr.Code, appErr.Message)
}
