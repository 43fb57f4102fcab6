package domain

// Badge is one entry of the static achievement catalog. Category matches an
// ActivityType; RequiredCount is the activity total that unlocks it.
type Badge struct {
	ID            int64        `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Description   string       `json:"description" db:"description"`
	Icon          string       `json:"icon" db:"icon"`
	Category      ActivityType `json:"category" db:"category"`
	RequiredCount int64        `json:"required_count" db:"required_count"`
}
