// Package webserver hosts the pySET web client shell and, optionally, proxies
// its API calls to a pySET server.
package webserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/rs/zerolog"

	"pyset/internal/config"
)

//go:embed web
var webFS embed.FS

// Head is the metadata rendered into every page
type Head struct {
	Lang        string
	Title       string
	Charset     string
	Viewport    string
	Description string
	Favicon     string
}

var defaultHead = Head{
	Lang:        "en",
	Title:       "pySET",
	Charset:     "utf-8",
	Viewport:    "width=device-width, initial-scale=1",
	Description: "pySET WebApp",
	Favicon:     "/static/favicon.svg",
}

type server struct {
	cfg     *config.WebConfig
	log     zerolog.Logger
	static  fs.FS
	pages   *template.Template
	apiBase string
}

// NewApp builds the fiber app without listening
func NewApp(cfg *config.WebConfig, log zerolog.Logger) (*fiber.App, error) {
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, fmt.Errorf("failed to create web sub-filesystem: %w", err)
	}
	static, err := fs.Sub(webContent, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to create static sub-filesystem: %w", err)
	}
	pages, err := template.ParseFS(webContent, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	s := &server{
		cfg:     cfg,
		log:     log,
		static:  static,
		pages:   pages,
		apiBase: strings.TrimRight(cfg.APIUpstream, "/"),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(logger.New(logger.Config{
		Format: "${time} WEB ${status} ${method} ${path} ${latency}\n",
		Output: log,
	}))
	app.Use(cors.New())

	app.Get("/", s.index)
	app.Get("/config", s.config)
	app.Get("/static/*", s.staticFile)
	app.Get("/404/*", s.notFound)
	if s.apiBase != "" {
		app.All("/api/*", s.proxyAPI)
	}
	app.Use(s.notFound)

	return app, nil
}

func (s *server) render(c *fiber.Ctx, status int, page string) error {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, page, defaultHead); err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("page render failed")
		return c.Status(fiber.StatusInternalServerError).SendString(page + " could not be rendered")
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func (s *server) index(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "index.html")
}

func (s *server) notFound(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusNotFound, "404.html")
}

// config tells the page where the API lives; empty means the page derives it
// from its own location
func (s *server) config(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"apiUrl": s.apiBase,
	})
}

func (s *server) staticFile(c *fiber.Ctx) error {
	fsPath := strings.TrimPrefix(c.Params("*"), "/")

	data, err := fs.ReadFile(s.static, fsPath)
	if err != nil {
		return s.notFound(c)
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(fsPath, ".js"):
		contentType = "application/javascript; charset=utf-8"
	case strings.HasSuffix(fsPath, ".css"):
		contentType = "text/css; charset=utf-8"
	case strings.HasSuffix(fsPath, ".svg"):
		contentType = "image/svg+xml"
	}
	c.Set("Content-Type", contentType)

	return c.Send(data)
}

// proxyAPI forwards /api/... verbatim, query string included
func (s *server) proxyAPI(c *fiber.Ctx) error {
	target := s.apiBase + c.OriginalURL()
	if err := proxy.Do(c, target); err != nil {
		s.log.Error().Err(err).Str("target", target).Msg("API proxy failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status": "SERVER_ERROR",
			"error":  "API upstream unreachable",
		})
	}
	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}
