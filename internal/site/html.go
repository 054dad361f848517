package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// Asset file names, relative to the page.
const (
	StyleFile  = "style.css"
	ScriptFile = "script.js"
)

// LiveReloadPath is the websocket endpoint pages connect to when watching.
const LiveReloadPath = "/livereload"

var funcs = template.FuncMap{
	// Fields already went through the markup policy.
	"markup":      func(m render.Markup) template.HTML { return template.HTML(m) },
	"fontAwesome": func() string { return fontAwesomeCSS },
}

var pageTmpl = template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))

// RenderPage writes one page.
func RenderPage(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderPageBytes renders one page into memory.
func RenderPageBytes(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stylesheet returns the page stylesheet.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the page script.
func Script() []byte { return []byte(jsContent) }

// FileAssets returns the asset locations for pages opened straight from the
// output directory. Browsers refuse CORS-mode loads from file: pages, so the
// tags carry no integrity or crossorigin attributes.
func FileAssets() Assets {
	return Assets{StyleHref: StyleFile, ScriptHref: ScriptFile}
}

// AssetsAt returns the asset locations under prefix with their SRI values.
func AssetsAt(prefix string) (Assets, error) {
	styleSRI, err := integrity.Compute(integrity.SHA384, Stylesheet())
	if err != nil {
		return Assets{}, fmt.Errorf("hashing %s: %w", StyleFile, err)
	}
	scriptSRI, err := integrity.Compute(integrity.SHA384, Script())
	if err != nil {
		return Assets{}, fmt.Errorf("hashing %s: %w", ScriptFile, err)
	}
	return Assets{
		StyleHref:       prefix + StyleFile,
		StyleIntegrity:  styleSRI,
		ScriptHref:      prefix + ScriptFile,
		ScriptIntegrity: scriptSRI,
	}, nil
}
