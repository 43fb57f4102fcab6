package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User        UserRepository
	Client      ClientRepository
	Template    TemplateRepository
	Proposal    ProposalRepository
	Badge       BadgeRepository
	Activity    ActivityRepository
	Achievement AchievementRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Client:      NewClientRepository(db),
		Template:    NewTemplateRepository(db),
		Proposal:    NewProposalRepository(db),
		Badge:       NewBadgeRepository(db),
		Activity:    NewActivityRepository(db),
		Achievement: NewAchievementRepository(db),
	}
}
