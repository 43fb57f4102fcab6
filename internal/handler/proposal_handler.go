package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/middleware"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/proposal"
)

type ProposalHandler struct {
	proposalService proposal.Service
}

func NewProposalHandler(proposalService proposal.Service) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

func (h *ProposalHandler) List(c *fiber.Ctx) error {
	filter := repository.ProposalFilter{
		ClientID: int64(c.QueryInt("clientId")),
		Status:   domain.ProposalStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return middleware.BadRequest("Invalid status filter")
	}

	proposals, err := h.proposalService.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(proposals)
}

func (h *ProposalHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.proposalService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProposalInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.proposalService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"proposal":     result.Proposal,
		"achievements": result.Achievements,
	})
}

func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateProposalInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	updated, err := h.proposalService.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProposalHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.proposalService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export streams the rendered document. Rendering failures come back as a
// single generic export failure; no partial output is ever written.
func (h *ProposalHandler) Export(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	format, err := domain.ParseExportFormat(c.Query("format", "pdf"))
	if err != nil {
		return middleware.BadRequest(err.Error())
	}

	result, err := h.proposalService.Export(c.Context(), id, format)
	if err != nil {
		if isNotFound(err) {
			return err
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to export proposal")
	}

	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Set("Content-Type", result.ContentType)
	return c.Send(result.Buffer)
}

func (h *ProposalHandler) Send(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.proposalService.Send(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"sent_to":      result.SentTo,
		"proposal":     result.Proposal,
		"achievements": result.Achievements,
	})
}

func isNotFound(err error) bool {
	switch err {
	case domain.ErrProposalNotFound, domain.ErrClientNotFound, domain.ErrTemplateNotFound:
		return true
	}
	return false
}
