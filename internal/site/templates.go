package site

// fontAwesomeCSS provides the icons named by tabs, day headers and links.
const fontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"

// pageTemplate is the Go html/template for every itinerary page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{fontAwesome}}" crossorigin="anonymous" referrerpolicy="no-referrer">
  <link rel="stylesheet" href="{{.Assets.StyleHref}}"{{with .Assets.StyleIntegrity}} integrity="{{.}}" crossorigin="anonymous"{{end}}>
  {{- with .HashScript}}
  <script src="{{.URL}}" integrity="{{.Integrity}}" crossorigin="{{.CrossOrigin}}" referrerpolicy="no-referrer"
    onload="window[{{.GlobalName}}] = window[{{.GlobalName}}] || window[{{.AltGlobalName}}];"
    onerror="console.error('hash library failed to load:', {{.URL}});"></script>
  {{- end}}
</head>
<body{{if .ScrollTop}} data-scroll-top="true"{{end}}{{with .LiveReload}} data-livereload="{{.}}"{{end}}{{with .SnapshotID}} data-snapshot="{{.}}"{{end}}>
  <header class="trip-header">
    <h1 id="trip-title">{{.Title}}</h1>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme"><i class="fas fa-circle-half-stroke"></i></button>
  </header>
  <nav class="tabs" id="tabs-container" role="tablist">
    {{- range .Tabs}}
    <a class="tab{{if .Active}} active{{end}}" href="{{.Href}}" role="tab" aria-selected="{{if .Active}}true{{else}}false{{end}}" data-position="{{.Position}}">
      <i class="fas fa-{{.Icon}}"></i> {{.Label}}
    </a>
    {{- end}}
  </nav>
  <main class="layout">
    <section class="day" id="day-content">
      {{- with .Error}}
      <div class="error-panel">
        {{- range .Lines}}
        <p>{{.}}</p>
        {{- end}}
      </div>
      {{- else}}
      {{- with .Header}}
      <div class="day-header">
        <h2><i class="fas fa-{{.Icon}}"></i> {{markup .Title}}</h2>
        <p class="day-date">{{markup .Date}}</p>
        {{- with .Notes}}
        <p class="day-notes"><i class="fas fa-circle-info"></i> {{markup .}}</p>
        {{- end}}
      </div>
      {{- end}}
      {{- with .Content}}
      {{- if .Slots}}
      <div class="timeline">
        {{- range .Slots}}
        <div class="slot">
          <div class="slot-time">{{markup .TimeRange}}</div>
          <div class="slot-body">
            <h3 class="slot-activity">{{markup .Activity}}</h3>
            {{- with .Details}}
            <p class="slot-details">{{markup .}}</p>
            {{- end}}
          </div>
        </div>
        {{- end}}
      </div>
      {{- else}}
      <p class="no-activities">{{.Placeholder}}</p>
      {{- end}}
      {{- with .Links}}
      <div class="special-links">
        {{- with .Route}}
        <a class="route-link" href="{{.URL}}" target="_blank" rel="noopener noreferrer"><i class="fas fa-{{.Icon}}"></i> {{.Label}}</a>
        {{- end}}
        {{- with .Restaurants}}
        <div class="restaurants">
          <h4><i class="fas fa-{{.Icon}}"></i> {{.Heading}}</h4>
          <ul>
            {{- range .Items}}
            <li><strong>{{markup .Name}}</strong> - {{markup .Specialty}} ({{markup .Location}})</li>
            {{- end}}
          </ul>
        </div>
        {{- end}}
      </div>
      {{- end}}
      {{- end}}
      {{- end}}
    </section>
    <aside class="checklist" id="checklist-container">
      <h3><i class="fas fa-list-check"></i> Checklist</h3>
      <ul>
        {{- range .Checklist.Entries}}
        <li class="{{if $.Checklist.Placeholder}}checklist-empty{{else}}checklist-item{{end}}">{{markup .}}</li>
        {{- end}}
      </ul>
    </aside>
  </main>
  <script src="{{.Assets.ScriptHref}}"{{with .Assets.ScriptIntegrity}} integrity="{{.}}" crossorigin="anonymous"{{end}}></script>
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --danger: #e03131;
  --danger-light: #fff5f5;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --content-max-width: 1100px;
}

[data-theme="dark"] {
  --bg: #1a1b1e;
  --bg-secondary: #25262b;
  --text: #c1c2c5;
  --text-secondary: #a6a7ab;
  --text-muted: #5c5f66;
  --border: #373a40;
  --accent: #4dabf7;
  --accent-light: #1c2b3a;
  --danger: #ff6b6b;
  --danger-light: #2c1f1f;
  --shadow: 0 1px 3px rgba(0,0,0,0.4);
}

/* ============ Base ============ */
* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

a { color: var(--accent); }

/* ============ Header ============ */
.trip-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1.5rem 1rem 0.5rem;
}

.trip-header h1 { margin: 0; font-size: 1.6rem; }

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 0.4rem 0.6rem;
}

/* ============ Tabs ============ */
.tabs {
  display: flex;
  flex-wrap: wrap;
  gap: 0.25rem;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 0 1rem;
  border-bottom: 1px solid var(--border);
}

.tab {
  padding: 0.5rem 0.9rem;
  border: 1px solid transparent;
  border-bottom: none;
  border-radius: 6px 6px 0 0;
  color: var(--text-secondary);
  text-decoration: none;
}

.tab:hover { background: var(--bg-secondary); }

.tab.active {
  background: var(--bg);
  border-color: var(--border);
  color: var(--accent);
  font-weight: 600;
  margin-bottom: -1px;
}

/* ============ Layout ============ */
.layout {
  display: grid;
  grid-template-columns: 1fr 280px;
  gap: 2rem;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1.5rem 1rem 3rem;
}

@media (max-width: 800px) {
  .layout { grid-template-columns: 1fr; }
}

/* ============ Day ============ */
.day-header h2 { margin: 0 0 0.25rem; }
.day-date { margin: 0; color: var(--text-muted); }

.day-notes {
  margin: 1rem 0;
  padding: 0.75rem 1rem;
  background: var(--accent-light);
  border-left: 3px solid var(--accent);
  border-radius: 4px;
}

.timeline { margin-top: 1.5rem; }

.slot {
  display: grid;
  grid-template-columns: 130px 1fr;
  gap: 1rem;
  padding: 0.75rem 0;
  border-bottom: 1px solid var(--border);
}

.slot-time { font-weight: 600; color: var(--accent); }
.slot-activity { margin: 0; font-size: 1.05rem; }
.slot-details { margin: 0.25rem 0 0; color: var(--text-secondary); }

.no-activities {
  margin-top: 1.5rem;
  color: var(--text-muted);
  font-style: italic;
}

/* ============ Special links ============ */
.special-links {
  margin-top: 1.5rem;
  padding: 1rem;
  background: var(--bg-secondary);
  border-radius: 6px;
}

.route-link { display: inline-block; margin-bottom: 0.5rem; font-weight: 600; }
.restaurants h4 { margin: 0.5rem 0; }
.restaurants ul { margin: 0; padding-left: 1.2rem; }

/* ============ Checklist ============ */
.checklist {
  align-self: start;
  padding: 1rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  box-shadow: var(--shadow);
}

.checklist h3 { margin-top: 0; }
.checklist ul { margin: 0; padding-left: 1.2rem; }
.checklist-empty { list-style: none; margin-left: -1.2rem; color: var(--text-muted); }

/* ============ Error ============ */
.error-panel {
  padding: 1rem 1.25rem;
  background: var(--danger-light);
  border: 1px solid var(--danger);
  border-radius: 6px;
  color: var(--danger);
}

.error-panel p { margin: 0.25rem 0; }
`

// jsContent is the page script: theme, keyboard navigation, scroll and live reload.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function getStoredTheme() {
    try { return localStorage.getItem("itinerary-theme"); } catch(e) { return null; }
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("itinerary-theme", theme); } catch(e) {}
  }

  var stored = getStoredTheme();
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Scroll to top after a tab switch =====
  if (body.hasAttribute("data-scroll-top")) {
    window.scrollTo({ top: 0, behavior: "smooth" });
  }

  // ===== Keyboard navigation between tabs =====
  var tabs = Array.prototype.slice.call(document.querySelectorAll("#tabs-container .tab"));

  function activeIndex() {
    for (var i = 0; i < tabs.length; i++) {
      if (tabs[i].classList.contains("active")) return i;
    }
    return 0;
  }

  document.addEventListener("keydown", function(e) {
    if (!tabs.length || e.altKey || e.ctrlKey || e.metaKey) return;
    var target = e.target;
    if (target && (target.tagName === "INPUT" || target.tagName === "TEXTAREA")) return;
    var i = activeIndex();
    if (e.key === "ArrowRight") {
      window.location.href = tabs[(i + 1) % tabs.length].href;
    } else if (e.key === "ArrowLeft") {
      window.location.href = tabs[(i - 1 + tabs.length) % tabs.length].href;
    } else if (e.key >= "1" && e.key <= "9") {
      var n = parseInt(e.key, 10) - 1;
      if (n < tabs.length) window.location.href = tabs[n].href;
    }
  });

  // ===== Live reload =====
  var reloadPath = body.getAttribute("data-livereload");
  if (reloadPath && window.WebSocket) {
    var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
    var socket = new WebSocket(proto + window.location.host + reloadPath);
    socket.onmessage = function(msg) {
      if (msg.data === "reload") window.location.reload();
    };
    socket.onclose = function() {
      console.info("live reload disconnected");
    };
  }
})();
`
