// Package markdown turns author-written markdown into HTML that is safe to
// embed in a page. Rendering is a pure function of its input: the same source
// always yields the same HTML, and nothing outside the returned string is
// touched.
package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	engine    goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewRenderer() *Renderer {
	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Footnote,
			extension.DefinitionList,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "pre", "code", "div")
	sanitizer.AllowAttrs("id").Matching(bluemonday.Paragraph).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Renderer{
		engine:    engine,
		sanitizer: sanitizer,
	}
}

// ToSafeHTML converts markdown source into sanitised HTML. Scripts, event
// handlers and other active content never survive the sanitiser, so the
// result can be written into a template without further escaping.
func (r *Renderer) ToSafeHTML(source string) (string, error) {
	var buf bytes.Buffer

	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return r.sanitizer.Sanitize(buf.String()), nil
}
