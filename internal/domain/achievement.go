package domain

import "time"

// UserAchievement exists only once a badge's threshold has been crossed.
// Count keeps tracking the live activity total afterwards, so progress past
// 100% stays visible.
type UserAchievement struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	BadgeID  int64     `json:"badge_id" db:"badge_id"`
	Count    int64     `json:"count" db:"count"`
	Progress int64     `json:"progress" db:"progress"`
	EarnedAt time.Time `json:"earned_at" db:"earned_at"`
}

// UserAchievementWithBadge is the read shape for the achievements API,
// joining the badge catalog row onto the achievement.
type UserAchievementWithBadge struct {
	UserAchievement
	Badge Badge `json:"badge"`
}

// ProgressPercent reports unlock progress capped at 100.
func (a UserAchievementWithBadge) ProgressPercent() int64 {
	if a.Badge.RequiredCount <= 0 {
		return 100
	}
	pct := a.Count * 100 / a.Badge.RequiredCount
	if pct > 100 {
		pct = 100
	}
	return pct
}
