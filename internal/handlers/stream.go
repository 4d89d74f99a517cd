// This file holds the Server-Sent Events endpoint that keeps the dashboard live.
// SSE is a long-lived HTTP response: the server never "finishes" the body, it
// just keeps appending "data: <payload>\n\n" blocks, and the browser's built-in
// EventSource API turns each block into an event. No WebSocket upgrade, no
// custom framing — it's plain HTTP, which is why it works through every proxy.
package handlers

import (
	"bufio"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/averyk/go-web-tutorial/internal/live"
)

// StreamChartData returns the handler for GET /api/data/stream.
//
// This follows the "handler factory" pattern: it takes the Hub as an argument
// and returns a fiber.Handler closed over it. This lets us inject dependencies
// without using global variables — the same pattern you'd use to inject a
// database handle.
func StreamChartData(hub *live.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// These three headers are the SSE contract: the MIME type tells the
		// browser to treat the body as an event stream, and no-cache stops
		// intermediaries from buffering a response that never ends.
		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")

		// One Subscriber per open connection. The buffer of 16 absorbs short
		// bursts; if the client falls further behind than that, the Hub drops it.
		sub := &live.Subscriber{
			Topic: live.TopicChart,
			Send:  make(chan []byte, 16),
		}
		hub.Subscribe(sub)

		// SetBodyStreamWriter hands us the raw response body as a writer and
		// keeps the connection open while the function runs. Fiber is built on
		// fasthttp, so this streaming hook comes from fasthttp directly.
		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			// Unsubscribe no matter how we exit. If the Hub already evicted us
			// (slow client), this is a harmless no-op.
			defer hub.Unsubscribe(sub)

			// Range over the Send channel: this blocks until the Hub delivers
			// the next payload, and exits cleanly when the channel is closed.
			for data := range sub.Send {
				if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
					return
				}
				// Flush pushes the event onto the wire immediately. A flush
				// error means the browser tab closed — our cue to stop.
				if err := w.Flush(); err != nil {
					return
				}
			}
		}))

		return nil
	}
}
