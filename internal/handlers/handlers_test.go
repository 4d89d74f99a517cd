package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyk/go-web-tutorial/internal/handlers"
	"github.com/averyk/go-web-tutorial/internal/models"
	"github.com/averyk/go-web-tutorial/web"
)

// newTestApp builds a Fiber app wired the same way as cmd/server/main.go,
// minus the middleware and the live stream (the hub is tested in its own
// package). app.Test lets us run requests through the full router without
// opening a real network listener.
func newTestApp() *fiber.App {
	engine := html.NewFileSystem(web.Templates(), ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", handlers.Home)
	app.Get("/about", handlers.About)
	app.Get("/dashboard", handlers.Dashboard)

	api := app.Group("/api")
	api.Get("/data", handlers.GetChartData)
	api.Get("/team", handlers.GetTeam)

	app.Get("/health", handlers.HealthCheck)

	app.Use("/static", filesystem.New(filesystem.Config{Root: web.Static()}))
	app.Use(handlers.NotFound)

	return app
}

// get issues a GET through the app's router and returns the response plus its body.
func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHTMLPages(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		path string
		want string // a fragment the rendered page must contain
	}{
		{"/", "Welcome!"},
		{"/about", "Alice"},
		{"/dashboard", "Data Dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, app, tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestAboutPageListsWholeTeam(t *testing.T) {
	app := newTestApp()

	_, body := get(t, app, "/about")
	for _, member := range []string{"Alice", "Bob", "Carol"} {
		assert.Contains(t, body, member)
	}
}

func TestUnknownPathReturnsCustom404(t *testing.T) {
	app := newTestApp()

	resp, body := get(t, app, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page Not Found")
}

func TestChartDataEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := get(t, app, "/api/data")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")

	var data models.ChartData
	require.NoError(t, json.Unmarshal([]byte(body), &data))
	require.Len(t, data.Labels, 6)
	require.Len(t, data.Values, len(data.Labels))
	assert.Equal(t, "January", data.Labels[0])
	assert.WithinDuration(t, time.Now().UTC(), data.Timestamp, time.Minute)
}

func TestTeamEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := get(t, app, "/api/team")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var team []models.TeamMember
	require.NoError(t, json.Unmarshal([]byte(body), &team))
	require.Len(t, team, 3)
	assert.Equal(t, "Alice", team[0].Name)
	assert.Equal(t, "Data Engineer", team[0].Role)
	// IDs are minted per request and must be distinct within the payload.
	assert.NotEqual(t, team[0].ID, team[1].ID)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestStaticAssetsAreServed(t *testing.T) {
	app := newTestApp()

	resp, body := get(t, app, "/static/css/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "font-family")

	// A missing asset under /static must still end at the custom 404.
	resp, _ = get(t, app, "/static/css/missing.css")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
