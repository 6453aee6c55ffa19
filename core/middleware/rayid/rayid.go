// Package rayid assigns a unique ray ID to every incoming request.
//
// The ID is stored in the Fiber context locals under "ray_id" (consumed by
// logger.WithRayID) and echoed in the X-Ray-Id response header so clients can
// reference a specific request when reporting problems.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the Fiber locals key under which the ray ID is stored.
const LocalsKey = "ray_id"

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-Id"

// New returns the ray ID middleware. It should be registered before any
// middleware or handler that logs, so every log line can be correlated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an inbound ray ID from a trusted proxy, otherwise mint one.
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
