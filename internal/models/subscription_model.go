package models

const (
	PlanFree     = "Free"
	PlanBasic    = "Basic"
	PlanStandard = "Standard"
	PlanPremium  = "Premium"
)

// PlanCredits is the credit allowance granted by each plan.
var PlanCredits = map[string]int{
	PlanFree:     10,
	PlanBasic:    50,
	PlanStandard: 150,
	PlanPremium:  400,
}

func ValidPlan(plan string) bool {
	_, ok := PlanCredits[plan]
	return ok
}

const (
	TierNovice     = "Novato Creador"
	TierStrategist = "Estratega de Contenido"
	TierInfluencer = "Influencer Digital"
	TierVisionary  = "Visionario de LinkedIn"
)

// Progress is the gamification view of an account.
type Progress struct {
	Level          int    `json:"level"`
	XP             int    `json:"xp"`
	XPForNextLevel int    `json:"xpForNextLevel"`
	Tier           string `json:"tier"`
	LevelsGained   int    `json:"levelsGained,omitempty"`
}
