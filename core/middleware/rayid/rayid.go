package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header the ray id is echoed in.
const Header = "X-Ray-Id"

// New returns a middleware that assigns every request a unique ray id,
// stores it in the context locals for log correlation, and echoes it in the
// response headers. An incoming ray id is reused so callers can trace
// through multiple services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
