package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health is the /api/health response.
type Health struct {
	Status        string `json:"status"`
	Uptime        string `json:"uptime"`
	Cycles        int    `json:"cycles"`
	StatusClients int    `json:"status_clients"`
	CameraClients int    `json:"camera_clients"`
}

// handleHealth reports that the server is up and how many cycles it has seen
func (s *Server) handleHealth(c *fiber.Ctx) error {
	s.reportsMu.RLock()
	cycles := s.cycles
	s.reportsMu.RUnlock()

	return c.JSON(Health{
		Status:        "ok",
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		Cycles:        cycles,
		StatusClients: s.statusHub.ClientCount(),
		CameraClients: s.cameraHub.ClientCount(),
	})
}

// handleStatus returns the latest report
func (s *Server) handleStatus(c *fiber.Ctx) error {
	r, ok := s.Latest()
	if !ok {
		return c.Status(fiber.StatusNoContent).Send(nil)
	}
	return c.JSON(r)
}

// handleReports returns recent reports, oldest first.
// ?limit=N returns only the last N.
func (s *Server) handleReports(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", MaxReports)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must not be negative",
		})
	}

	s.reportsMu.RLock()
	defer s.reportsMu.RUnlock()

	reports := s.reports
	if limit < len(reports) {
		reports = reports[len(reports)-limit:]
	}
	return c.JSON(reports)
}
