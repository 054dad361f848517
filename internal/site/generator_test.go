package site

import (
	"context"
	"errors"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/progress"
	"github.com/ziadkadry99/itinerary/internal/render"
)

type countingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *countingReporter) Start(total int)                { r.total = total }
func (r *countingReporter) Update(current int, msg string) { r.messages = append(r.messages, msg) }
func (r *countingReporter) Finish()                        { r.finished = true }

var _ progress.Reporter = (*countingReporter)(nil)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFullSiteGeneration(t *testing.T) {
	out := t.TempDir()
	rep := &countingReporter{}

	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	g.Reporter = rep
	n, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, f := range []string{"index.html", "day-2.html", "day-3.html", StyleFile, ScriptFile} {
		assert.FileExists(t, filepath.Join(out, f))
	}
	assert.Equal(t, 3, rep.total)
	assert.Equal(t, []string{"index.html", "day-2.html", "day-3.html"}, rep.messages)
	assert.True(t, rep.finished)

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Contains(t, index, "<title>Itinerary Pyrenees | 10-12 August</title>")
	assert.Contains(t, index, `href="day-2.html"`)
	assert.Contains(t, index, `class="tab active" href="index.html"`)
	assert.Contains(t, index, "Flight to Barcelona")
	assert.Contains(t, index, "Gate closes at 07:40")
	assert.Contains(t, index, "Pick up the car at <b>T1</b>", "raw policy inserts markup as is")
	assert.Contains(t, index, "fa-plane")
	assert.Contains(t, index, "Boots")
	assert.NotContains(t, index, "data-scroll-top")

	day2 := readFile(t, filepath.Join(out, "day-2.html"))
	assert.Contains(t, day2, `class="tab active" href="day-2.html"`)
	assert.Contains(t, day2, "fa-hiking")
	assert.Contains(t, day2, render.RouteLinkLabel)
	assert.Contains(t, day2, "https://www.wikiloc.com/hiking-trails/estany-de-sant-maurici-1")
	assert.Contains(t, day2, "<strong>Casa Masover</strong> - Trout (Espot)")
	assert.Contains(t, day2, `data-scroll-top="true"`)

	day3 := readFile(t, filepath.Join(out, "day-3.html"))
	assert.Contains(t, day3, render.NoActivitiesText)
	assert.Equal(t, 0, strings.Count(day3, `class="slot"`))
	assert.NotContains(t, day3, "special-links")
}

func TestGeneratedAssetsLoadFromDisk(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	for _, name := range []string{StyleFile, ScriptFile} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
	}

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Contains(t, index, `<link rel="stylesheet" href="style.css">`)
	assert.Contains(t, index, `<script src="script.js"></script>`)
	assert.NotContains(t, index, `href="style.css" integrity`)
	assert.NotContains(t, index, `src="script.js" integrity`)
}

func TestGenerateHashLibraryTag(t *testing.T) {
	out := t.TempDir()
	script := integrity.HashLibrary("", integrity.DefaultHashLibraryIntegrity, "")

	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	g.HashScript = &script
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	index := html.UnescapeString(readFile(t, filepath.Join(out, "index.html")))
	assert.Contains(t, index, `src="`+integrity.DefaultHashLibraryURL+`"`)
	assert.Contains(t, index, `integrity="`+integrity.DefaultHashLibraryIntegrity+`"`)
	assert.Contains(t, index, `crossorigin="anonymous"`)
	assert.Contains(t, index, "jssha1")
}

func TestGenerateEscapePolicy(t *testing.T) {
	out := t.TempDir()
	f, err := render.NewFormatter(render.PolicyEscape)
	require.NoError(t, err)

	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	g.Formatter = f
	_, err = g.Generate(context.Background())
	require.NoError(t, err)

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Contains(t, index, "Pick up the car at &lt;b&gt;T1&lt;/b&gt;")
}

func TestGenerateLoadFailure(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(loader.New(filepath.Join(out, "missing.json")), out)
	n, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrFetch))
	assert.Equal(t, 1, n)

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Contains(t, index, render.LoadErrorLines[0])
	assert.Contains(t, index, render.LoadErrorLines[1])
	assert.Contains(t, index, "<title>"+DefaultTitle+"</title>")
	assert.NotContains(t, index, `role="tab"`)
}

func TestGenerateRemovesStaleDayPages(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "day-9.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestGenerateLiveReloadAttribute(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(loader.New(filepath.Join("testdata", "viatge.json")), out)
	g.LiveReload = true
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Contains(t, readFile(t, filepath.Join(out, "index.html")), `data-livereload="/livereload"`)
}
