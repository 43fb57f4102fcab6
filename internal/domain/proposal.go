package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ProposalStatus string

const (
	StatusDraft    ProposalStatus = "draft"
	StatusSent     ProposalStatus = "sent"
	StatusApproved ProposalStatus = "approved"
	StatusRejected ProposalStatus = "rejected"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// PricingItem is one line of the optional pricing breakdown.
type PricingItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type PricingBlock struct {
	Items []PricingItem `json:"items,omitempty"`
	Notes string        `json:"notes,omitempty"`
}

// ProposalContent maps template section titles to the user's text, plus an
// optional pricing sub-object. Stored as a jsonb document.
type ProposalContent struct {
	Sections map[string]string `json:"sections,omitempty"`
	Pricing  *PricingBlock     `json:"pricing,omitempty"`
}

// Section returns the text captured for a section title, or the fallback
// when the section was never filled in.
func (c *ProposalContent) Section(title, fallback string) string {
	if c == nil || c.Sections == nil {
		return fallback
	}
	if text, ok := c.Sections[title]; ok && text != "" {
		return text
	}
	return fallback
}

func (c ProposalContent) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ProposalContent) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ProposalContent{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported proposal content type %T", src)
	}
}

type Proposal struct {
	ID         int64            `json:"id" db:"id"`
	Title      string           `json:"title" db:"title"`
	ClientID   int64            `json:"client_id" db:"client_id"`
	TemplateID int64            `json:"template_id" db:"template_id"`
	Status     ProposalStatus   `json:"status" db:"status"`
	Amount     *string          `json:"amount,omitempty" db:"amount"`
	Content    *ProposalContent `json:"content,omitempty" db:"content"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}

type CreateProposalInput struct {
	Title      string           `json:"title" validate:"required,min=5"`
	ClientID   int64            `json:"client_id" validate:"required,gt=0"`
	TemplateID int64            `json:"template_id" validate:"required,gt=0"`
	Status     ProposalStatus   `json:"status,omitempty"`
	Amount     *string          `json:"amount,omitempty"`
	Content    *ProposalContent `json:"content,omitempty"`
}

type UpdateProposalInput struct {
	Title      *string          `json:"title,omitempty" validate:"omitempty,min=5"`
	ClientID   *int64           `json:"client_id,omitempty" validate:"omitempty,gt=0"`
	TemplateID *int64           `json:"template_id,omitempty" validate:"omitempty,gt=0"`
	Status     *ProposalStatus  `json:"status,omitempty"`
	Amount     *string          `json:"amount,omitempty"`
	Content    *ProposalContent `json:"content,omitempty"`
}

// AchievementNotice rides along on write responses when the write unlocked
// new badges.
type AchievementNotice struct {
	Badges  []Badge `json:"badges"`
	Message string  `json:"message"`
}

func NewAchievementNotice(badges []Badge) *AchievementNotice {
	if len(badges) == 0 {
		return nil
	}
	return &AchievementNotice{
		Badges:  badges,
		Message: "Congratulations! You've earned new achievement badges!",
	}
}
