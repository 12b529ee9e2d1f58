package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUserID = errors.New("no user id in request context")

// getUserID extracts the authenticated user id stored by the auth
// middleware.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, errNoUserID
	}
	return uuid.Parse(raw)
}
