// Package handlers contains the HTTP route handler functions for the application.
// Each handler corresponds to one URL and is responsible for reading the request,
// building whatever data the page needs, and writing a response — either a
// rendered HTML template or JSON.
//
// This file holds the HTML page handlers. Each one calls c.Render(name, data):
// Fiber looks the template up in the view engine configured on the app, executes
// it with the given data, and writes the resulting HTML to the browser.
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/averyk/go-web-tutorial/internal/models"
)

// Home handles GET /.
// The simplest possible page handler: render a template, pass it a couple of
// values. Inside index.html, {{.Title}} and {{.CurrentYear}} are replaced with
// the values supplied here — that substitution step is all "templating" is.
func Home(c *fiber.Ctx) error {
	// fiber.Map is just a shorthand for map[string]interface{} — an easy way to
	// bundle named values for the template without declaring a struct.
	return c.Render("index", fiber.Map{
		"Title":       "Home",
		"CurrentYear": time.Now().Year(),
	})
}

// About handles GET /about.
// This demonstrates passing structured data (a slice of structs) to a template.
// The template ranges over .Team and prints one line per member. The slice is
// built fresh on every request — nothing is stored between requests.
func About(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{
		"Title": "About Us",
		"Team":  models.SampleTeam(),
	})
}

// Dashboard handles GET /dashboard.
// The interesting part happens client-side: the page's JavaScript fetches
// /api/data and draws a chart from it, then listens on /api/data/stream for
// live updates. The handler itself only renders the empty shell.
func Dashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"Title": "Data Dashboard",
	})
}

// NotFound is the fallback handler for any path no route matched.
// It is registered LAST (app.Use with no path matches everything), so it only
// runs when every real route has already declined the request. A friendly 404
// page beats the browser's default error for people typing URLs by hand.
func NotFound(c *fiber.Ctx) error {
	// Status sets the HTTP status code; chaining Render keeps the custom page.
	// Returning 404 (not 200!) matters — crawlers and monitoring rely on it.
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Title": "Page Not Found",
	})
}
