package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("**Hook** line\nsecond line")
	assert.Contains(t, out, "<strong>Hook</strong>")
	assert.Contains(t, out, "<br")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script>")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "hello")
}
