package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CristiGvl/picoFetch/internal/duration"
	"github.com/CristiGvl/picoFetch/internal/render"
)

const requestTimeout = 10 * time.Second

func unavailable(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": what + " unavailable"})
}

// unitsFor reads the optional ?units= query, falling back to the server default.
func (s *Server) unitsFor(c *fiber.Ctx) int {
	return duration.ClampUnits(c.QueryInt("units", s.units))
}

// CPU endpoint
func (s *Server) getCPU(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info := s.facade.CPUInfo(ctx)
	if info == nil {
		return unavailable(c, "cpu information")
	}

	return c.JSON(render.NewCPUView(info))
}

// Uptime endpoint
func (s *Server) getUptime(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	up := s.facade.Uptime(ctx)
	if up == nil {
		return unavailable(c, "uptime")
	}

	return c.JSON(render.NewUptimeView(up, s.unitsFor(c)))
}

// Memory endpoint
func (s *Server) getMemory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info := s.facade.Memory(ctx)
	if info == nil {
		return unavailable(c, "memory information")
	}

	return c.JSON(render.NewMemoryView(info))
}

// Disk endpoint
func (s *Server) getDisk(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info := s.facade.Disk(ctx)
	if info == nil {
		return unavailable(c, "disk information")
	}

	return c.JSON(render.NewDiskView(info))
}

// OS release endpoint
func (s *Server) getOSRelease(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	release := s.facade.OSRelease(ctx)
	if release == nil {
		return unavailable(c, "os release")
	}

	return c.JSON(release)
}

// Snapshot endpoint. Partial snapshots are returned as-is; only a snapshot
// with nothing in it is unavailable.
func (s *Server) getSnapshot(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	snap := s.facade.Snapshot(ctx)
	if snap.Empty() {
		return unavailable(c, "snapshot")
	}

	return c.JSON(render.NewSnapshotView(snap, s.unitsFor(c)))
}
