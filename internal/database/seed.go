package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/propelhq/propel-be/internal/domain"
)

var seedTemplates = []domain.CreateTemplateInput{
	{
		Name:        "Professional Services",
		Description: strPtr("Ideal for consulting, IT services, and professional engagements"),
		Category:    "Professional Services",
		IsDefault:   true,
		Content: domain.TemplateContent{Sections: []domain.TemplateSection{
			{Title: "Executive Summary"},
			{Title: "Scope of Services"},
			{Title: "Delivery Timeline"},
			{Title: "Pricing & Payment Terms"},
			{Title: "Terms & Conditions"},
		}},
	},
	{
		Name:        "Product Sales",
		Description: strPtr("Perfect for product offerings, equipment sales and supplies"),
		Category:    "Product Sales",
		IsDefault:   true,
		Content: domain.TemplateContent{Sections: []domain.TemplateSection{
			{Title: "Product Overview"},
			{Title: "Features & Benefits"},
			{Title: "Pricing & Quantity"},
			{Title: "Delivery & Support"},
			{Title: "Payment Terms"},
		}},
	},
	{
		Name:        "Project Proposal",
		Description: strPtr("Structured for complex projects with milestones and deliverables"),
		Category:    "Project Proposal",
		IsDefault:   true,
		Content: domain.TemplateContent{Sections: []domain.TemplateSection{
			{Title: "Project Overview"},
			{Title: "Objectives & Goals"},
			{Title: "Methodology"},
			{Title: "Timeline & Milestones"},
			{Title: "Resource Allocation"},
			{Title: "Budget Breakdown"},
			{Title: "Success Criteria"},
		}},
	},
}

var seedBadges = []domain.Badge{
	{Name: "First Proposal", Description: "Create your first proposal", Icon: "award", Category: domain.ActivityProposalCreation, RequiredCount: 1},
	{Name: "Proposal Pro", Description: "Create 5 proposals", Icon: "trophy", Category: domain.ActivityProposalCreation, RequiredCount: 5},
	{Name: "Proposal Master", Description: "Create 10 proposals", Icon: "star", Category: domain.ActivityProposalCreation, RequiredCount: 10},
	{Name: "First Client", Description: "Add your first client", Icon: "users", Category: domain.ActivityClientManagement, RequiredCount: 1},
	{Name: "Network Builder", Description: "Manage 5 clients", Icon: "network", Category: domain.ActivityClientManagement, RequiredCount: 5},
	{Name: "Template Tinkerer", Description: "Create 3 custom templates", Icon: "check-circle", Category: domain.ActivityTemplateUsage, RequiredCount: 3},
	{Name: "Document Dispatcher", Description: "Export your first document", Icon: "check-circle", Category: domain.ActivityDocumentExport, RequiredCount: 1},
	{Name: "Closer", Description: "Send a proposal to a client", Icon: "trophy", Category: domain.ActivityProposalSent, RequiredCount: 1},
	{Name: "Dealmaker", Description: "Record your first revenue opportunity", Icon: "dollar-sign", Category: domain.ActivityRevenue, RequiredCount: 1},
	{Name: "Rainmaker", Description: "Record 5 revenue opportunities", Icon: "dollar-sign", Category: domain.ActivityRevenue, RequiredCount: 5},
	{Name: "CRM Connector", Description: "Import clients from a CRM", Icon: "network", Category: domain.ActivityCRMIntegration, RequiredCount: 1},
}

// Seed fills the demo user, default templates and the badge catalog on an
// empty database. Existing rows are left alone.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var users int64
	if err := db.GetContext(ctx, &users, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if users == 0 {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (username, password) VALUES ($1, $2)`,
			"demo", "demo"); err != nil {
			return err
		}
		log.Info().Msg("seeded demo user")
	}

	var templates int64
	if err := db.GetContext(ctx, &templates, `SELECT COUNT(*) FROM templates`); err != nil {
		return err
	}
	if templates == 0 {
		for _, t := range seedTemplates {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO templates (name, description, category, content, is_default)
				 VALUES ($1, $2, $3, $4, $5)`,
				t.Name, t.Description, t.Category, t.Content, t.IsDefault); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(seedTemplates)).Msg("seeded default templates")
	}

	var badges int64
	if err := db.GetContext(ctx, &badges, `SELECT COUNT(*) FROM badges`); err != nil {
		return err
	}
	if badges == 0 {
		for _, b := range seedBadges {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO badges (name, description, icon, category, required_count)
				 VALUES ($1, $2, $3, $4, $5)`,
				b.Name, b.Description, b.Icon, b.Category, b.RequiredCount); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(seedBadges)).Msg("seeded badge catalog")
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}
