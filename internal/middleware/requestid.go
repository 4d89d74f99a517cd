// Package middleware contains HTTP middleware — functions that run before (or around)
// every route handler. Middleware is how cross-cutting concerns (logging context,
// request tracing, auth) stay out of the individual handlers.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	// uuid generates the random identifiers we tag each request with.
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the per-request identifier.
// Echoing the ID back lets a user paste it into a bug report, and lets you grep
// the server logs for exactly that request.
const HeaderRequestID = "X-Request-ID"

// RequestID returns a middleware that tags every request with a unique ID.
//
// If the client (or a proxy in front of us) already sent an X-Request-ID header,
// we keep it — that preserves end-to-end tracing across services. Otherwise we
// generate a fresh UUID. Either way the ID is:
//   - stored in c.Locals so any handler further down the chain can read it, and
//   - echoed back on the response so the caller can correlate logs.
//
// This follows the same shape as every other Fiber middleware: a constructor
// returning a fiber.Handler that calls c.Next() to continue the chain.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			// uuid.NewString() returns a random (version 4) UUID like
			// "5f8d7a3e-...". Collisions are astronomically unlikely.
			id = uuid.NewString()
		}

		// c.Locals is per-request storage — a scratch space that lives exactly as
		// long as this request. Handlers read it back with c.Locals("requestID").
		c.Locals("requestID", id)
		c.Set(HeaderRequestID, id)

		// c.Next() hands control to the next middleware or the route handler.
		// Anything after this line would run on the way back out (we need nothing).
		return c.Next()
	}
}
