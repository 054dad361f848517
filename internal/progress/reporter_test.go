package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "day-2.html")
	r.Finish()

	assert.Equal(t, "Building 2 itinerary pages\n[1/2] index.html\n[2/2] day-2.html\nSite build complete\n", buf.String())
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter().(*CIReporter)
	assert.True(t, ok)
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	_, ok := NewReporter().(*TerminalReporter)
	assert.True(t, ok)
}

func TestTerminalReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}
	r.Start(3)
	r.Update(3, "day-3.html")
	r.Finish()
	assert.NotEmpty(t, buf.String())
}
