package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
)

type Service interface {
	SendProposal(ctx context.Context, toEmail, contactName string, proposal *domain.Proposal, attachment *domain.ExportResult) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) SendProposal(ctx context.Context, toEmail, contactName string, proposal *domain.Proposal, attachment *domain.ExportResult) error {
	greeting := "Hello"
	if contactName != "" {
		greeting = "Hello " + contactName
	}

	html := fmt.Sprintf(
		`<p>%s,</p><p>Please find attached our proposal <strong>%s</strong>. We look forward to hearing from you.</p><p>Best regards,<br>%s</p>`,
		greeting, proposal.Title, s.cfg.CompanyName,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.CompanyName, s.cfg.FromEmail),
		To:      []string{toEmail},
		Subject: "Proposal: " + proposal.Title,
		Html:    html,
		Attachments: []*resend.Attachment{
			{
				Filename:    attachment.Filename,
				Content:     attachment.Buffer,
				ContentType: attachment.ContentType,
			},
		},
	}

	_, err := s.client.Emails.Send(params)
	return err
}
