package utils

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var previewPolicy = bluemonday.UGCPolicy()

// RenderMarkdown converts post content to sanitised HTML. Single newlines are
// kept as line breaks since posts are written one sentence per line.
func RenderMarkdown(content string) string {
	extensions := parser.CommonExtensions | parser.HardLineBreak | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(content))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return string(previewPolicy.SanitizeBytes(markdown.Render(doc, renderer)))
}
