// This file holds the JSON API handlers. Instead of rendering HTML, these
// serialize a Go value to JSON and send it with a Content-Type of
// application/json — the shape of every data API you'll ever build, minus the
// database. JavaScript on the dashboard page consumes /api/data; /api/team
// returns the same team list the about page renders, showing that one data
// source can feed both a template and an API.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/averyk/go-web-tutorial/internal/models"
)

// GetChartData handles GET /api/data.
// c.JSON serializes the struct using its `json:"..."` field tags, so the
// response comes out as {"labels": [...], "values": [...], "timestamp": "..."}.
// In a real application this payload would come from a database or an
// analytics pipeline; the handler code would not change at all.
func GetChartData(c *fiber.Ctx) error {
	return c.JSON(models.SampleChartData())
}

// GetTeam handles GET /api/team.
// Returns the team list as a JSON array. Compare with the About page handler,
// which passes the identical slice to a template instead — same data, two
// different presentation layers.
func GetTeam(c *fiber.Ctx) error {
	return c.JSON(models.SampleTeam())
}
