package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Policy decides how data fields cross into markup.
type Policy string

const (
	// PolicyRaw inserts fields unchanged. The data file is trusted.
	PolicyRaw Policy = "raw"
	// PolicyEscape HTML-escapes every field.
	PolicyEscape Policy = "escape"
	// PolicySanitize keeps user-content-safe HTML and drops the rest.
	PolicySanitize Policy = "sanitize"
	// PolicyMarkdown renders every field as inline Markdown.
	PolicyMarkdown Policy = "markdown"
)

// Policies lists the accepted policy names.
var Policies = []Policy{PolicyRaw, PolicyEscape, PolicySanitize, PolicyMarkdown}

// Formatter applies a Policy to text fields.
type Formatter struct {
	policy Policy
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
}

// NewFormatter returns a Formatter for policy. An empty policy means raw.
func NewFormatter(policy Policy) (*Formatter, error) {
	f := &Formatter{policy: policy}
	switch policy {
	case "":
		f.policy = PolicyRaw
	case PolicyRaw, PolicyEscape:
	case PolicySanitize:
		f.ugc = bluemonday.UGCPolicy()
	case PolicyMarkdown:
		f.md = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		)
	default:
		return nil, fmt.Errorf("unknown markup policy %q", policy)
	}
	return f, nil
}

// RawFormatter returns the trusted pass-through formatter.
func RawFormatter() *Formatter {
	return &Formatter{policy: PolicyRaw}
}

// Policy returns the policy in effect.
func (f *Formatter) Policy() Policy { return f.policy }

// Format applies the policy to s.
func (f *Formatter) Format(s string) Markup {
	switch f.policy {
	case PolicyEscape:
		return Markup(html.EscapeString(s))
	case PolicySanitize:
		return Markup(f.ugc.Sanitize(s))
	case PolicyMarkdown:
		return f.markdown(s)
	default:
		return Markup(s)
	}
}

// markdown renders s and unwraps a lone paragraph so fields stay inline.
func (f *Formatter) markdown(s string) Markup {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(s), &buf); err != nil {
		return Markup(html.EscapeString(s))
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return Markup(out)
}

var strict = bluemonday.StrictPolicy()

// PlainText strips every tag from m and decodes entities, for targets that
// cannot show markup.
func PlainText(m Markup) string {
	return html.UnescapeString(strict.Sanitize(string(m)))
}
