package handlers

import (
	"github.com/fibranet/backoffice/internal/reports"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	reports *reports.Service
}

func NewStatsHandler(svc *reports.Service) *StatsHandler {
	return &StatsHandler{reports: svc}
}

// ConcentratorStats returns users-per-NAS based on each user's most recent
// session id.
func (h *StatsHandler) ConcentratorStats(c *fiber.Ctx) error {
	stats, err := h.reports.ConcentratorStats()
	if err != nil {
		return fail(c, "Failed to fetch concentrator stats", err)
	}
	return c.JSON(stats)
}

// UserStats returns total distinct users and currently active connections.
func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.reports.UserStats()
	if err != nil {
		return fail(c, "Failed to fetch user stats", err)
	}
	return c.JSON(stats)
}

// UserConsumption returns daily upload/download gigabytes for the trailing
// 30 days.
func (h *StatsHandler) UserConsumption(c *fiber.Ctx) error {
	username := c.Params("username")

	samples, err := h.reports.UserConsumption(username)
	if err != nil {
		return fail(c, "Failed to fetch user consumption", err)
	}
	return c.JSON(samples)
}
