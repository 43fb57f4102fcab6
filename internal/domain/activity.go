package domain

import (
	"encoding/json"
	"time"
)

// ActivityType is the closed set of categories shared between the activity
// log and the badge catalog. The API rejects anything outside this set so a
// typo can never produce activities that silently count toward nothing.
type ActivityType string

const (
	ActivityProposalCreation ActivityType = "proposal_creation"
	ActivityClientManagement ActivityType = "client_management"
	ActivityTemplateUsage    ActivityType = "template_usage"
	ActivityDocumentExport   ActivityType = "document_export"
	ActivityProposalSent     ActivityType = "proposal_sent"
	ActivityRevenue          ActivityType = "revenue"
	ActivityCRMIntegration   ActivityType = "crm_integration"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityProposalCreation, ActivityClientManagement, ActivityTemplateUsage,
		ActivityDocumentExport, ActivityProposalSent, ActivityRevenue, ActivityCRMIntegration:
		return true
	}
	return false
}

// UserActivity is an append-only fact. Rows are never mutated or deleted;
// achievement evaluation counts them as the source of truth.
type UserActivity struct {
	ID           int64           `json:"id" db:"id"`
	UserID       int64           `json:"user_id" db:"user_id"`
	ActivityType ActivityType    `json:"activity_type" db:"activity_type"`
	EntityID     *int64          `json:"entity_id,omitempty" db:"entity_id"`
	EntityType   *string         `json:"entity_type,omitempty" db:"entity_type"`
	Data         json.RawMessage `json:"data,omitempty" db:"data"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type RecordActivityInput struct {
	UserID       int64                  `json:"user_id" validate:"required,gt=0"`
	ActivityType ActivityType           `json:"activity_type" validate:"required"`
	EntityID     *int64                 `json:"entity_id,omitempty"`
	EntityType   *string                `json:"entity_type,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`
}
