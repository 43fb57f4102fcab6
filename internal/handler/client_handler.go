package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/service/client"
)

type ClientHandler struct {
	clientService client.Service
}

func NewClientHandler(clientService client.Service) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.clientService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateClientInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.clientService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"client":       result.Client,
		"achievements": result.Achievements,
	})
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateClientInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	updated, err := h.clientService.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.clientService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
