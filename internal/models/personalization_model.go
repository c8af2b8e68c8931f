package models

type Identity struct {
	Name               string `json:"name"`
	Occupation         string `json:"occupation"`
	Bio                string `json:"bio"`
	CustomInstructions string `json:"customInstructions"`
}

const (
	PracticeTypeBase   = "base"
	PracticeTypeCustom = "custom"
)

type BestPractice struct {
	ID     string `json:"id"`
	Key    string `json:"key,omitempty"`
	Text   string `json:"text"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// BasePractices returns the built-in practices with their default toggles.
func BasePractices() []BestPractice {
	return []BestPractice{
		{ID: "bp-hook", Key: "hook", Type: PracticeTypeBase, Active: true},
		{ID: "bp-story", Key: "storytelling", Type: PracticeTypeBase, Active: true},
		{ID: "bp-pain", Key: "pain_points", Type: PracticeTypeBase, Active: false},
		{ID: "bp-paragraphs", Key: "short_paragraphs", Type: PracticeTypeBase, Active: true},
		{ID: "bp-question", Key: "end_with_question", Type: PracticeTypeBase, Active: true},
	}
}
