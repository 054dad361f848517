// Package page runs the itinerary pipeline for one page instance: load the
// data, paint the initial view or the error panel, then hand navigation to
// the tab controller.
package page

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/nav"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// ErrNotLoaded is returned by navigation on a page whose load failed.
var ErrNotLoaded = errors.New("itinerary not loaded")

// Page is one page instance.
type Page struct {
	state      *loader.State
	renderer   *render.Renderer
	controller *nav.Controller
	err        error
}

type options struct {
	formatter *render.Formatter
	logger    *zap.Logger
	scroller  nav.Scroller
}

// Option configures Open.
type Option func(*options)

// WithFormatter sets the markup policy for text fields.
func WithFormatter(f *render.Formatter) Option {
	return func(o *options) { o.formatter = f }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithScroller overrides the scroller. By default the target is used when it
// implements nav.Scroller.
func WithScroller(s nav.Scroller) Option {
	return func(o *options) { o.scroller = s }
}

// Open loads the itinerary and paints target. A load failure never escapes:
// the error panel is painted, the cause is logged and kept in Err.
func Open(ctx context.Context, l *loader.Loader, target render.Target, opts ...Option) *Page {
	o := options{logger: zap.NewNop()}
	if s, ok := target.(nav.Scroller); ok {
		o.scroller = s
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Page{
		state:    loader.NewState(),
		renderer: render.New(target, o.formatter),
	}

	if err := l.Load(ctx, p.state); err != nil {
		o.logger.Error("itinerary load failed",
			zap.String("source", l.Source()),
			zap.String("kind", loader.Kind(err)),
			zap.Error(err))
		p.err = err
		p.renderer.RenderLoadError()
		return p
	}

	trip := p.state.Trip()
	p.renderer.Initialize(trip)
	p.controller = nav.New(trip.Days, p.renderer, target, o.scroller)

	o.logger.Info("itinerary loaded",
		zap.String("source", l.Source()),
		zap.String("destination", trip.Destination),
		zap.Int("days", len(trip.Days)),
		zap.String("snapshot", p.state.SnapshotID().String()))
	return p
}

// Err returns the load error, or nil.
func (p *Page) Err() error { return p.err }

// Loaded reports whether the itinerary was loaded.
func (p *Page) Loaded() bool { return p.err == nil }

// Trip returns the loaded trip, or nil.
func (p *Page) Trip() *itinerary.Trip { return p.state.Trip() }

// SnapshotID identifies the loaded document; uuid.Nil after a failure.
func (p *Page) SnapshotID() uuid.UUID { return p.state.SnapshotID() }

// Controller returns the tab controller, or nil after a failure.
func (p *Page) Controller() *nav.Controller { return p.controller }

// SelectDay forwards a tab selection to the controller.
func (p *Page) SelectDay(index int) error {
	if p.controller == nil {
		return ErrNotLoaded
	}
	return p.controller.SelectDay(index)
}
