package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/middleware"
	"github.com/propelhq/propel-be/internal/service"
)

type Handlers struct {
	Client      *ClientHandler
	Template    *TemplateHandler
	Proposal    *ProposalHandler
	Badge       *BadgeHandler
	Achievement *AchievementHandler
	CRM         *CRMHandler
	Dashboard   *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Client:      NewClientHandler(services.Client),
		Template:    NewTemplateHandler(services.Template),
		Proposal:    NewProposalHandler(services.Proposal),
		Badge:       NewBadgeHandler(services.Badge),
		Achievement: NewAchievementHandler(services.Activity, services.Achievement),
		CRM:         NewCRMHandler(services.CRM, services.Client),
		Dashboard:   NewDashboardHandler(services.Dashboard),
	}
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}
