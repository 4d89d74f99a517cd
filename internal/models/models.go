// Package models defines the data structures this application serves.
// There is no database behind them: every value is a literal built fresh for each
// request, which keeps the tutorial focused on the web layer itself. In a real
// application these structs would be filled from a database or a data pipeline —
// the JSON tags and the handler code would stay exactly the same.
//
// The struct field tags (the backtick strings like `json:"..."`) tell the encoder
// which name each field gets in the JSON output. Go exports fields by capitalising
// them, but JSON APIs conventionally use lowercase keys, so the tags bridge the two.
package models

import (
	"time"

	// uuid provides universally unique identifiers. We stamp each team member with
	// one so the payload looks like something a database would have produced, and so
	// client code can key list items by a stable-shaped identifier.
	"github.com/google/uuid"
)

// TeamMember is one row of the team list shown on the about page and
// returned by GET /api/team.
type TeamMember struct {
	ID   uuid.UUID `json:"id"`   // Generated fresh per request — nothing persists between requests
	Name string    `json:"name"` // Display name
	Role string    `json:"role"` // Job title shown next to the name
}

// ChartData is the payload behind GET /api/data, shaped for Chart.js on the
// dashboard page: one label per data point, values in the same order.
type ChartData struct {
	Labels    []string  `json:"labels"`    // X-axis labels; always the same length as Values
	Values    []int     `json:"values"`    // Y-axis values, one per label
	Timestamp time.Time `json:"timestamp"` // When this payload was built; encodes as RFC 3339
}

// SampleTeam builds the illustrative team list.
// In a real app this would be a database query; here it's a literal, rebuilt on
// every call so no state outlives a single request/response cycle.
func SampleTeam() []TeamMember {
	return []TeamMember{
		{ID: uuid.New(), Name: "Alice", Role: "Data Engineer"},
		{ID: uuid.New(), Name: "Bob", Role: "ML Engineer"},
		{ID: uuid.New(), Name: "Carol", Role: "Analytics Lead"},
	}
}

// SampleChartData builds the canned dashboard payload: six months of made-up
// values plus the moment the payload was created. The numbers are fixed on
// purpose — the dashboard tutorial is about the plumbing, not the data.
func SampleChartData() ChartData {
	return ChartData{
		Labels:    []string{"January", "February", "March", "April", "May", "June"},
		Values:    []int{65, 59, 80, 81, 56, 55},
		Timestamp: time.Now().UTC(),
	}
}
