// Package web serves a read-only telemetry dashboard for the Trilobot loops.
// It exposes the latest reports and a camera preview; it has no control
// endpoints.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/hub"
)

// MaxReports is how many reports /api/reports keeps.
const MaxReports = 200

// Server is the dashboard server. It implements behavior.Observer.
type Server struct {
	app     *fiber.App
	port    string
	started time.Time

	// Report buffer (last MaxReports)
	reports   []behavior.Report
	cycles    int
	reportsMu sync.RWMutex

	statusHub *hub.Hub
	cameraHub *hub.Hub

	// JPEG quality of camera previews
	Quality int
}

// NewServer creates a dashboard listening on port.
func NewServer(port string) *Server {
	s := &Server{
		port:      port,
		started:   time.Now(),
		reports:   make([]behavior.Report, 0, MaxReports),
		statusHub: hub.New("status"),
		cameraHub: hub.New("camera"),
		Quality:   80,
	}

	app := fiber.New(fiber.Config{
		AppName:               "Trilobot Dashboard",
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET",
	}))

	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/status", s.handleStatus)
	api.Get("/reports", s.handleReports)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/status", websocket.New(s.statusHub.Serve))
	app.Get("/ws/camera", websocket.New(s.cameraHub.Serve))

	s.app = app
	return s
}

// Start runs the hubs and blocks serving HTTP.
func (s *Server) Start() error {
	log.Info("dashboard listening", "url", "http://localhost:"+s.port)

	go s.statusHub.Run()
	go s.cameraHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Warn("dashboard stopped", "error", err)
		}
	}()
}

// Shutdown stops the hubs and the HTTP server.
func (s *Server) Shutdown() error {
	s.statusHub.Stop()
	s.cameraHub.Stop()
	return s.app.Shutdown()
}

// OnReport stores the report and pushes it to websocket clients. The camera
// preview is only encoded while someone is watching.
func (s *Server) OnReport(r behavior.Report) {
	frame := r.Frame
	r.Frame = nil

	s.reportsMu.Lock()
	s.reports = append(s.reports, r)
	if len(s.reports) > MaxReports {
		s.reports = s.reports[1:]
	}
	s.cycles++
	s.reportsMu.Unlock()

	if err := s.statusHub.BroadcastJSON(r); err != nil {
		log.Warn("encode report", "error", err)
	}

	if frame == nil || s.cameraHub.ClientCount() == 0 {
		return
	}
	jpeg, err := Preview(*frame, r, s.Quality)
	if err != nil {
		log.Warn("encode preview", "error", err)
		return
	}
	s.cameraHub.BroadcastBinary(jpeg)
}

// Latest returns the newest report, if any.
func (s *Server) Latest() (behavior.Report, bool) {
	s.reportsMu.RLock()
	defer s.reportsMu.RUnlock()
	if len(s.reports) == 0 {
		return behavior.Report{}, false
	}
	return s.reports[len(s.reports)-1], true
}
