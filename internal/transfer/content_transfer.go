package transfer

type KnowledgeInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type InspirationInput struct {
	Content string `json:"content"`
}

type PracticeInput struct {
	Text string `json:"text"`
}

type KeywordInput struct {
	Keyword string `json:"keyword"`
}

type EnhanceInput struct {
	Prompt string `json:"prompt"`
}
