package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/logging"
	"github.com/ziadkadry99/itinerary/internal/page"
	"github.com/ziadkadry99/itinerary/internal/progress"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// SiteGenerator writes one static HTML page per itinerary day.
type SiteGenerator struct {
	Loader     *loader.Loader
	OutputDir  string
	Formatter  *render.Formatter
	HashScript *integrity.Script
	// LiveReload makes pages connect to LiveReloadPath.
	LiveReload bool
	Reporter   progress.Reporter
	Logger     *zap.Logger
}

// NewSiteGenerator creates a SiteGenerator reading from l into outputDir.
func NewSiteGenerator(l *loader.Loader, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Loader:    l,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
	}
}

// Generate builds the site. Returns the number of pages written. On a load
// failure index.html still carries the error panel and the load error is
// returned.
func (g *SiteGenerator) Generate(ctx context.Context) (int, error) {
	logger := logging.OrNop(g.Logger)
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if err := g.writeAssets(); err != nil {
		return 0, err
	}
	if err := g.removeDayPages(); err != nil {
		return 0, err
	}

	assets := FileAssets()

	target := NewPageTarget(FileHref)
	p := page.Open(ctx, g.Loader, target,
		page.WithFormatter(g.Formatter),
		page.WithLogger(logger))

	decorate := func(d PageData) PageData {
		d.Assets = assets
		d.HashScript = g.HashScript
		if g.LiveReload {
			d.LiveReload = LiveReloadPath
		}
		if p.Loaded() {
			d.SnapshotID = p.SnapshotID().String()
		}
		return d
	}

	if !p.Loaded() {
		if err := g.writePage(FileHref(1), decorate(target.Data())); err != nil {
			return 0, err
		}
		return 1, fmt.Errorf("loading %s: %w", g.Loader.Source(), p.Err())
	}

	tabs := p.Controller().Len()
	reporter.Start(tabs)
	for i := 0; i < tabs; i++ {
		if err := ctx.Err(); err != nil {
			reporter.Finish()
			return i, err
		}
		if i > 0 {
			if err := p.SelectDay(i); err != nil {
				reporter.Finish()
				return i, fmt.Errorf("selecting day %d: %w", i+1, err)
			}
		}
		name := FileHref(i + 1)
		if err := g.writePage(name, decorate(target.Data())); err != nil {
			reporter.Finish()
			return i, fmt.Errorf("rendering %s: %w", name, err)
		}
		reporter.Update(i+1, name)
	}
	reporter.Finish()

	logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", tabs))
	return tabs, nil
}

func (g *SiteGenerator) writePage(name string, data PageData) error {
	out, err := RenderPageBytes(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, name), out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (g *SiteGenerator) writeAssets() error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, StyleFile), Stylesheet(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", StyleFile, err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, ScriptFile), Script(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ScriptFile, err)
	}
	return nil
}

// removeDayPages deletes day pages left by an earlier build with more days.
func (g *SiteGenerator) removeDayPages() error {
	stale, err := filepath.Glob(filepath.Join(g.OutputDir, "day-*.html"))
	if err != nil {
		return err
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("removing %s: %w", f, err)
		}
	}
	return nil
}
