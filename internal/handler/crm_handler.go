package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/service/client"
	"github.com/propelhq/propel-be/internal/service/crm"
)

type CRMHandler struct {
	crmService    crm.Service
	clientService client.Service
}

func NewCRMHandler(crmService crm.Service, clientService client.Service) *CRMHandler {
	return &CRMHandler{
		crmService:    crmService,
		clientService: clientService,
	}
}

func (h *CRMHandler) Connections(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.crmService.Connections(c.Context()))
}

func (h *CRMHandler) Connect(c *fiber.Ctx) error {
	result, err := h.crmService.Connect(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CRMHandler) Clients(c *fiber.Ctx) error {
	records, err := h.crmService.Clients(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"clients": records})
}

// Import pulls the provider's client records into the local client table.
func (h *CRMHandler) Import(c *fiber.Ctx) error {
	result, err := h.clientService.ImportFromCRM(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"clients":      result.Clients,
		"achievements": result.Achievements,
	})
}
