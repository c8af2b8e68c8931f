package models

type KnowledgeItem struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// InspirationPost is a viral post kept as a style exemplar for generation.
type InspirationPost struct {
	ID      string `db:"id" json:"id"`
	Content string `db:"content" json:"content"`
}
