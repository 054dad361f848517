package site

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/logging"
)

// ReloadMessage is sent to pages when the site was rebuilt.
const ReloadMessage = "reload"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Reloader tracks connected pages and tells them to reload.
type Reloader struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *zap.Logger
}

// NewReloader returns a Reloader with no clients.
func NewReloader(logger *zap.Logger) *Reloader {
	return &Reloader{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logging.OrNop(logger),
	}
}

// ServeHTTP upgrades the request and keeps the connection until the page goes away.
func (r *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Warn("live reload upgrade failed", zap.Error(err))
		return
	}

	r.mu.Lock()
	r.clients[conn] = struct{}{}
	r.mu.Unlock()
	r.logger.Debug("live reload client connected", zap.String("remote", req.RemoteAddr))

	defer r.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				r.logger.Debug("live reload read", zap.Error(err))
			}
			return
		}
	}
}

func (r *Reloader) drop(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	_ = conn.Close()
}

// Clients returns the number of connected pages.
func (r *Reloader) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Broadcast sends ReloadMessage to every connected page. Pages that cannot
// be written to are dropped.
func (r *Reloader) Broadcast() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(ReloadMessage)); err != nil {
			r.logger.Debug("live reload write", zap.Error(err))
			delete(r.clients, conn)
			_ = conn.Close()
		}
	}
}

// Close disconnects every page.
func (r *Reloader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		delete(r.clients, conn)
	}
}

// Watcher calls OnChange once per burst of writes to a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context)
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
}

// NewWatcher watches path. Its directory is watched so that editors that
// replace the file by renaming are still seen.
func NewWatcher(path string, debounce time.Duration, onChange func(context.Context), logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.OrNop(logger),
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("data file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.onChange(ctx)
		}
	}
}
