package models

import "time"

// Account is the single workspace's billing, progress and preference state.
type Account struct {
	Plan                string    `db:"plan" json:"plan"`
	Credits             int       `db:"credits" json:"credits"`
	XP                  int       `db:"xp" json:"xp"`
	Level               int       `db:"level" json:"level"`
	OnboardingCompleted bool      `db:"onboarding_completed" json:"onboardingCompleted"`
	Language            string    `db:"language" json:"language"`
	Timezone            string    `db:"timezone" json:"timezone"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

type NotificationPreferences struct {
	Digest     bool `db:"digest" json:"digest"`
	News       bool `db:"news" json:"news"`
	Confirm    bool `db:"confirm" json:"confirm"`
	Likes      bool `db:"likes" json:"likes"`
	Comments   bool `db:"comments" json:"comments"`
	Milestones bool `db:"milestones" json:"milestones"`
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Digest:   true,
		News:     true,
		Likes:    true,
		Comments: true,
	}
}

var SupportedLanguages = []string{"es", "en", "fr"}

func ValidLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
