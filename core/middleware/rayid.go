package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RayIDHeader carries the request id in both directions.
	RayIDHeader = "X-Ray-ID"
	// RayIDLocal is the fiber local holding the request id.
	RayIDLocal = "ray_id"
)

// RayID assigns every request an id, reusing one supplied by the client.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RayIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RayIDLocal, id)
		c.Set(RayIDHeader, id)
		return c.Next()
	}
}
