// Package server exposes a parsed directory over HTTP: HTML pages for
// browsing and a small JSON API. The store is never mutated here; every
// handler is a concurrent read.
package server

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/horhof/datafort.network/internal/metrics"
	"github.com/horhof/datafort.network/internal/render"
	"github.com/horhof/datafort.network/internal/tree"
)

// Config wires a Server's collaborators.
type Config struct {
	Store    *tree.Store
	Logger   zerolog.Logger
	Registry *prometheus.Registry
}

// Server owns the Fiber app and its handlers.
type Server struct {
	app      *fiber.App
	store    *tree.Store
	renderer *render.Renderer
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// New builds the app, registers metrics on cfg.Registry, and mounts all
// routes.
func New(cfg Config) *Server {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		app:      fiber.New(),
		store:    cfg.Store,
		renderer: render.New(),
		metrics:  metrics.New(registry),
		log:      cfg.Logger,
	}
	s.metrics.NodesLoaded.Set(float64(cfg.Store.Len()))

	s.app.Use(s.observe)

	s.app.Get("/", s.handleIndex)
	s.app.Get("/browse", s.handleBrowse)
	s.app.Get("/api/directory", s.handleDirectory)
	s.app.Get("/api/node/:path", s.handleNode)
	s.app.Get("/api/hosts", s.handleHosts)
	s.app.Get("/api/hosts/:host", s.handleHost)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return s
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on addr.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Int("nodes", s.store.Len()).Msg("directory server listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the app.
func (s *Server) Shutdown() error {
	s.log.Info().Msg("directory server shutting down")
	return s.app.Shutdown()
}

// observe records request metrics and a structured log line per request.
func (s *Server) observe(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	route := c.Route().Path
	elapsed := time.Since(start)
	s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	s.metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
	s.log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("duration", elapsed).
		Msg("request")
	return err
}

func (s *Server) handleIndex(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.renderer.Index(&buf, s.store.Metadata(), s.store.Roots()); err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(buf.String())
}

func (s *Server) handleBrowse(c fiber.Ctx) error {
	path := c.Query("path")
	node, err := s.find(path)
	if err != nil {
		return s.notFoundPage(c, path, err)
	}

	var buf bytes.Buffer
	if err := s.renderer.Node(&buf, node); err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(buf.String())
}

func (s *Server) handleDirectory(c fiber.Ctx) error {
	return c.JSON(s.store.Dump())
}

func (s *Server) handleNode(c fiber.Ctx) error {
	path := c.Params("path")
	node, err := s.find(path)
	if err != nil {
		if errors.Is(err, tree.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}
	return c.JSON(tree.DumpNode(node))
}

func (s *Server) handleHosts(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"hosts": s.store.Hosts()})
}

func (s *Server) handleHost(c fiber.Ctx) error {
	host := c.Params("host")
	nodes := s.store.ByHost(host)
	sites := make([]any, 0, len(nodes))
	for _, n := range nodes {
		sites = append(sites, tree.DumpNode(n))
	}
	return c.JSON(fiber.Map{"host": host, "sites": sites})
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "nodes": s.store.Len()})
}

// find wraps store lookups with the hit/miss counter.
func (s *Server) find(path string) (*tree.Node, error) {
	node, err := s.store.Find(path)
	s.metrics.Lookup(err == nil)
	return node, err
}

func (s *Server) notFoundPage(c fiber.Ctx, path string, err error) error {
	if !errors.Is(err, tree.ErrNotFound) {
		return err
	}
	var buf bytes.Buffer
	if err := s.renderer.NotFound(&buf, path); err != nil {
		return err
	}
	c.Type("html")
	return c.Status(fiber.StatusNotFound).SendString(buf.String())
}
