package server

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/itinerary"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/render"
	"github.com/ziadkadry99/itinerary/internal/site"
)

var fixture = filepath.Join("testdata", "viatge.json")

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, loader.New(fixture))

	w := get(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, loader.New(fixture))

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestIndexPage(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	w := get(t, srv, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	_, err := uuid.Parse(w.Header().Get(SnapshotHeader))
	assert.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Itinerary Pyrenees | 10-12 August</title>")
	assert.Contains(t, body, `class="tab active" href="/"`)
	assert.Contains(t, body, `href="/days/2"`)
	assert.Contains(t, body, `href="/static/style.css"`)
	assert.Contains(t, body, "Flight to Barcelona")
}

func TestDayPage(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	w := get(t, srv, "/days/2")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="tab active" href="/days/2"`)
	assert.Contains(t, body, "Estany de Sant Maurici")
	assert.Contains(t, body, render.RouteLinkLabel)
}

func TestUnknownDay(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	for _, path := range []string{"/days/4", "/days/0", "/days/-1", "/days/two"} {
		w := get(t, srv, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestRequestsDoNotSharePages(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	a := get(t, srv, "/days/3")
	b := get(t, srv, "/")
	assert.NotEqual(t, a.Header().Get(SnapshotHeader), b.Header().Get(SnapshotHeader))
	assert.Contains(t, b.Body.String(), `class="tab active" href="/"`)
}

func TestPageLoadFailure(t *testing.T) {
	srv := New(Config{}, loader.New(filepath.Join(t.TempDir(), "missing.json")))

	w := get(t, srv, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(SnapshotHeader))
	assert.Contains(t, w.Body.String(), render.LoadErrorLines[0])
}

func TestRemoteSourceNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()
	srv := New(Config{}, loader.New(upstream.URL+"/viatge.json"))

	w := get(t, srv, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), render.LoadErrorLines[1])

	w = get(t, srv, "/api/trip")
	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "status", resp.Kind)
	assert.NotContains(t, w.Body.String(), upstream.URL)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/viatge.json").Code)
}

func TestTripAPI(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	w := get(t, srv, "/api/trip")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SnapshotHeader))

	var doc itinerary.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.NoError(t, doc.Validate())
	assert.Equal(t, "Pyrenees", doc.Trip.Destination)
	assert.Len(t, doc.Trip.Days, 3)
}

func TestTripAPIInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viatge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"trip":{}}`), 0o644))
	srv := New(Config{}, loader.New(path))

	w := get(t, srv, "/api/trip")
	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Kind)
	assert.NotContains(t, resp.Error, path)
	assert.NotContains(t, w.Body.String(), filepath.Dir(path))
}

func TestErrorBodyOmitsCause(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "viatge.json")
	srv := New(Config{}, loader.New(missing))

	for _, route := range []string{"/api/trip", "/viatge.json"} {
		w := get(t, srv, route)
		require.Equal(t, http.StatusBadGateway, w.Code, route)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "fetch", resp.Kind, route)
		assert.Equal(t, "itinerary data unavailable", resp.Error, route)
		assert.NotContains(t, w.Body.String(), "gone", route)
	}
}

func TestRawData(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	w := get(t, srv, "/viatge.json")
	require.Equal(t, http.StatusOK, w.Code)
	want, err := os.ReadFile(fixture)
	require.NoError(t, err)
	assert.Equal(t, string(want), w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	w := get(t, srv, "/static/style.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, string(site.Stylesheet()), w.Body.String())

	w = get(t, srv, "/static/script.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(site.Script()), w.Body.String())
}

func TestServedPagesPinAssetIntegrity(t *testing.T) {
	srv := New(Config{}, loader.New(fixture))

	// html/template writes '+' as an entity inside attributes.
	body := html.UnescapeString(get(t, srv, "/").Body.String())
	for path, content := range map[string][]byte{
		"/static/style.css": site.Stylesheet(),
		"/static/script.js": site.Script(),
	} {
		sri, err := integrity.Compute(integrity.SHA384, content)
		require.NoError(t, err)
		assert.Contains(t, body, `"`+path+`" integrity="`+sri+`" crossorigin="anonymous"`, path)
	}
}

func TestHashScriptOption(t *testing.T) {
	script := integrity.HashLibrary("", integrity.DefaultHashLibraryIntegrity, "")
	srv := New(Config{}, loader.New(fixture), WithHashScript(&script))

	assert.Contains(t, get(t, srv, "/").Body.String(), integrity.DefaultHashLibraryURL)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, statusFor(loader.ErrParse))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
