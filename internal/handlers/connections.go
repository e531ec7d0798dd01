package handlers

import (
	"github.com/fibranet/backoffice/internal/reports"
	"github.com/gofiber/fiber/v2"
)

type ConnectionHandler struct {
	reports *reports.Service
}

func NewConnectionHandler(svc *reports.Service) *ConnectionHandler {
	return &ConnectionHandler{reports: svc}
}

// List returns one page of latest-session-per-user records plus the
// per-concentrator breakdown and pagination metadata for the same filters.
func (h *ConnectionHandler) List(c *fiber.Ctx) error {
	filter := reports.NormalizeFilter(
		c.Query("page"),
		c.Query("search"),
		c.Query("status"),
		c.Query("nasip"),
	)

	page, err := h.reports.Connections(filter)
	if err != nil {
		return fail(c, "Failed to fetch connections", err)
	}
	return c.JSON(page)
}

// UserHistory returns the last 10 sessions for a user, newest first.
func (h *ConnectionHandler) UserHistory(c *fiber.Ctx) error {
	username := c.Params("username")

	records, err := h.reports.UserHistory(username)
	if err != nil {
		return fail(c, "Failed to fetch connection history", err)
	}
	return c.JSON(records)
}

// DebugUser dumps every accounting record for a user. Used by support staff
// to diagnose sessions that never show as closed.
func (h *ConnectionHandler) DebugUser(c *fiber.Ctx) error {
	username := c.Params("username")

	records, err := h.reports.UserRecords(username)
	if err != nil {
		return fail(c, "Failed to fetch user records", err)
	}
	return c.JSON(fiber.Map{
		"username":     username,
		"totalRecords": len(records),
		"records":      records,
	})
}
