package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/service/badge"
)

type BadgeHandler struct {
	badgeService badge.Service
}

func NewBadgeHandler(badgeService badge.Service) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

func (h *BadgeHandler) List(c *fiber.Ctx) error {
	badges, err := h.badgeService.List(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(badges)
}

func (h *BadgeHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.badgeService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(found)
}
