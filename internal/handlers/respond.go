package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// fail reports a request failure in the flat error contract the back-office
// frontend expects: HTTP 500 with a summary and the underlying driver message.
func fail(c *fiber.Ctx, summary string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   summary,
		"details": err.Error(),
	})
}
