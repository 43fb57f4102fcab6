package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/achievement"
	"github.com/propelhq/propel-be/internal/service/activity"
	"github.com/propelhq/propel-be/internal/service/archive"
	"github.com/propelhq/propel-be/internal/service/badge"
	"github.com/propelhq/propel-be/internal/service/client"
	"github.com/propelhq/propel-be/internal/service/crm"
	"github.com/propelhq/propel-be/internal/service/dashboard"
	"github.com/propelhq/propel-be/internal/service/document"
	"github.com/propelhq/propel-be/internal/service/email"
	"github.com/propelhq/propel-be/internal/service/proposal"
	"github.com/propelhq/propel-be/internal/service/template"
)

type Services struct {
	Activity    activity.Service
	Achievement achievement.Service
	Badge       badge.Service
	Client      client.Service
	Template    template.Service
	Proposal    proposal.Service
	Document    document.Service
	Email       email.Service
	Archive     archive.Service
	CRM         crm.Service
	Dashboard   dashboard.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	var printer document.PDFPrinter
	if cfg.ChromeDisabled {
		printer = document.NewDisabledPrinter()
	} else {
		printer = document.NewChromePrinter(cfg.PDFTimeout)
	}

	activityService := activity.NewService(repos.Activity)
	achievementService := achievement.NewService(repos.Badge, repos.Activity, repos.Achievement, repos.User)
	badgeService := badge.NewService(repos.Badge, redis)
	crmService := crm.NewService()
	documentService := document.NewService(cfg, printer)
	emailService := email.NewService(cfg)
	archiveService := archive.NewService(minioClient, cfg)

	clientService := client.NewService(repos.Client, repos.Proposal, activityService, achievementService, crmService, cfg)
	templateService := template.NewService(repos.Template, repos.Proposal, activityService, achievementService, redis, cfg)
	proposalService := proposal.NewService(repos.Proposal, repos.Client, repos.Template,
		activityService, achievementService, documentService, emailService, archiveService, cfg)
	dashboardService := dashboard.NewService(repos.Client, repos.Template, repos.Proposal, redis)

	return &Services{
		Activity:    activityService,
		Achievement: achievementService,
		Badge:       badgeService,
		Client:      clientService,
		Template:    templateService,
		Proposal:    proposalService,
		Document:    documentService,
		Email:       emailService,
		Archive:     archiveService,
		CRM:         crmService,
		Dashboard:   dashboardService,
	}
}
