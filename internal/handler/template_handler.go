package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/service/template"
)

type TemplateHandler struct {
	templateService template.Service
}

func NewTemplateHandler(templateService template.Service) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.templateService.List(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(templates)
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.templateService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateTemplateInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.templateService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"template":     result.Template,
		"achievements": result.Achievements,
	})
}

func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.templateService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
