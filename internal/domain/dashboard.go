package domain

type RecentProposal struct {
	ID          int64          `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Status      ProposalStatus `json:"status" db:"status"`
	CompanyName string         `json:"company_name" db:"company_name"`
	Amount      *string        `json:"amount,omitempty" db:"amount"`
}

type DashboardStats struct {
	TotalClients      int64            `json:"total_clients"`
	TotalTemplates    int64            `json:"total_templates"`
	TotalProposals    int64            `json:"total_proposals"`
	ProposalsByStatus map[string]int64 `json:"proposals_by_status"`
	RecentProposals   []RecentProposal `json:"recent_proposals"`
}
