// cmd/server/main.go
// This is the entry point for the web application.
// In Go, the "main" package and its "main()" function is where the program starts executing.
// The "cmd/server" directory follows a common Go convention: the cmd/ folder holds executable
// binaries, and internal/ holds reusable packages that are not meant to be imported by other projects.
package main

import (
	"log"
	"time"

	// fiber is a fast HTTP web framework inspired by Express.js
	"github.com/gofiber/fiber/v2"
	// cors handles Cross-Origin Resource Sharing — lets pages served from another
	// origin (host/port) call our JSON API during development
	"github.com/gofiber/fiber/v2/middleware/cors"
	// filesystem serves files from any fs-like source — here, the assets embedded in the binary
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"
	// recover catches panics inside handlers and turns them into 500 responses
	// instead of crashing the whole server
	"github.com/gofiber/fiber/v2/middleware/recover"
	// html is the template engine adapter: it teaches Fiber to render Go
	// html/template files via c.Render(name, data)
	"github.com/gofiber/template/html/v2"

	// Internal packages — our own code, imported by module path
	"github.com/averyk/go-web-tutorial/internal/config"
	"github.com/averyk/go-web-tutorial/internal/handlers"
	"github.com/averyk/go-web-tutorial/internal/live"
	"github.com/averyk/go-web-tutorial/internal/middleware"
	"github.com/averyk/go-web-tutorial/web"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	// cfg is a pointer (*Config) containing all runtime settings like the port and environment.
	cfg := config.Load()

	// Create the template engine over the HTML files embedded in the binary.
	// ".html" is the extension the engine appends to view names, so
	// c.Render("index", ...) executes templates/index.html.
	engine := html.NewFileSystem(web.Templates(), ".html")

	// Create a new Hub and start it in a goroutine.
	// The Hub fans live chart updates out to every open dashboard page.
	// "go hub.Run()" starts Run() as a goroutine: a lightweight concurrent function
	// that runs in the background without blocking the rest of startup.
	hub := live.NewHub()
	go hub.Run()
	// The sampler broadcasts a fresh chart payload every few seconds — it stands in
	// for a real data pipeline landing new numbers.
	go live.RunSampler(hub, 5*time.Second)

	// Create a new Fiber app (our HTTP server) with the template engine attached.
	app := fiber.New(fiber.Config{
		AppName: "Go Web Tutorial",
		Views:   engine,
	})

	// --- Global middleware ---
	// These run on every request, in registration order, before any route handler.
	// recover.New() must come first so a panic anywhere below becomes a 500, not a crash.
	app.Use(recover.New())
	// logger.New() logs each HTTP request: method, path, status code, and duration.
	app.Use(logger.New())
	// middleware.RequestID() tags every request with a UUID for log correlation.
	app.Use(middleware.RequestID())
	// cors.New() allows requests from any origin — convenient in development.
	// In production, lock this down to your specific domain.
	app.Use(cors.New())

	// --- HTML pages ---
	// Each route maps a URL to a handler that renders a template.
	app.Get("/", handlers.Home)
	app.Get("/about", handlers.About)
	app.Get("/dashboard", handlers.Dashboard)

	// --- JSON API ---
	// Route group pattern: app.Group(prefix) registers every route on the group
	// under the shared prefix — /api/data, /api/team, /api/data/stream.
	api := app.Group("/api")
	api.Get("/data", handlers.GetChartData)
	api.Get("/data/stream", handlers.StreamChartData(hub))
	api.Get("/team", handlers.GetTeam)

	// GET /health is a liveness check used by container platforms and load
	// balancers to verify the server is running.
	app.Get("/health", handlers.HealthCheck)

	// --- Static assets ---
	// Serve the embedded CSS/JS under /static. The filesystem middleware answers
	// /static/* itself and passes everything else through.
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.Static(),
	}))

	// --- 404 fallback ---
	// app.Use with no path matches EVERY request, and middleware registered last
	// only runs when no route above handled the request. That makes this the
	// catch-all: anything that reaches it gets the custom 404 page.
	app.Use(handlers.NotFound)

	// In development, print a friendly banner listing the URLs to visit.
	// Production logs stay machine-readable, so the banner is skipped there.
	if cfg.IsDevelopment() {
		log.Println("============================================================")
		log.Println("Starting Go Web Tutorial (development mode)")
		log.Println("Visit these URLs in your browser:")
		log.Printf("  Home:      http://localhost:%s/", cfg.Port)
		log.Printf("  About:     http://localhost:%s/about", cfg.Port)
		log.Printf("  Dashboard: http://localhost:%s/dashboard", cfg.Port)
		log.Printf("  API data:  http://localhost:%s/api/data", cfg.Port)
		log.Println("Press CTRL+C to stop the server")
		log.Println("============================================================")
	}

	// Start listening for HTTP connections on the configured port.
	// ":" + cfg.Port produces a string like ":8080" — listen on all network interfaces.
	log.Printf("Starting server on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
