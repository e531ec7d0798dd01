package handlers

import (
	"errors"

	"github.com/fibranet/backoffice/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AgendaHandler is the CRUD surface for the scheduling screen. This is the
// only write path of the service; everything else is read-only reporting.
type AgendaHandler struct {
	db *gorm.DB
}

func NewAgendaHandler(db *gorm.DB) *AgendaHandler {
	return &AgendaHandler{db: db}
}

// List returns agenda events, optionally bounded by a from/to window.
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	query := h.db.Model(&models.AgendaEvent{})

	if from := c.Query("from"); from != "" {
		query = query.Where("starts_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("starts_at <= ?", to)
	}

	events := make([]models.AgendaEvent, 0)
	if err := query.Order("starts_at ASC").Find(&events).Error; err != nil {
		return fail(c, "Failed to fetch agenda events", err)
	}
	return c.JSON(events)
}

// Get returns a single agenda event.
func (h *AgendaHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	var event models.AgendaEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Agenda event not found",
				"details": err.Error(),
			})
		}
		return fail(c, "Failed to fetch agenda event", err)
	}
	return c.JSON(event)
}

// Create stores a new agenda event.
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var event models.AgendaEvent
	if err := c.BodyParser(&event); err != nil {
		return fail(c, "Invalid agenda event payload", err)
	}

	if err := h.db.Create(&event).Error; err != nil {
		return fail(c, "Failed to create agenda event", err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Update replaces the mutable fields of an existing event.
func (h *AgendaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var event models.AgendaEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Agenda event not found",
				"details": err.Error(),
			})
		}
		return fail(c, "Failed to fetch agenda event", err)
	}

	var input models.AgendaEvent
	if err := c.BodyParser(&input); err != nil {
		return fail(c, "Invalid agenda event payload", err)
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"location":    input.Location,
		"starts_at":   input.StartsAt,
		"ends_at":     input.EndsAt,
		"priority":    input.Priority,
		"done":        input.Done,
		"partial":     input.Partial,
		"cancelled":   input.Cancelled,
		"time_set":    input.TimeSet,
		"created_by":  input.CreatedBy,
		"company":     input.Company,
	}
	if err := h.db.Model(&event).Updates(updates).Error; err != nil {
		return fail(c, "Failed to update agenda event", err)
	}
	return c.JSON(event)
}

// Delete removes an agenda event.
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&models.AgendaEvent{}, id)
	if result.Error != nil {
		return fail(c, "Failed to delete agenda event", result.Error)
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Agenda event not found",
			"details": "no rows deleted",
		})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
