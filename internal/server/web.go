package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"value-arena/internal/catalog"
	"value-arena/internal/markup"
)

// site renders the web views. Everything it holds is read-only after
// newSite returns, so handlers share it without locking.
type site struct {
	catalog *catalog.Catalog
	battle  battlePage
	logger  *zap.Logger
}

func newSite(c *catalog.Catalog, logger *zap.Logger) (*site, error) {
	battle, err := newBattlePage(c.Battle, markup.New())
	if err != nil {
		return nil, fmt.Errorf("prepare battle view: %w", err)
	}
	return &site{catalog: c, battle: battle, logger: logger}, nil
}

// renderPage writes the page for path wrapped in the layout shell and
// reports the status it should be served with. Unknown paths get the
// not-found page.
func (s *site) renderPage(w io.Writer, path string) (int, error) {
	var (
		tmpl   *template.Template
		title  string
		page   any
		status = http.StatusOK
	)
	switch path {
	case "/":
		tmpl, title, page = leaderboardTmpl, s.catalog.Site.Name, s.leaderboardPage()
	case "/battle":
		tmpl, title, page = battleTmpl, "Battle · "+s.catalog.Site.Name, s.battle
	default:
		tmpl, title, page = notFoundTmpl, "Not found · "+s.catalog.Site.Name, notFoundPage{Path: path}
		status = http.StatusNotFound
	}

	data := pageData{
		Title:  title,
		Site:   s.catalog.Site,
		Nav:    navigation(s.catalog.Site.Navigation, path),
		Recent: s.catalog.Site.RecentThreads,
		Page:   page,
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return http.StatusInternalServerError, err
	}
	return status, nil
}

func (s *site) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	status, err := s.renderPage(&buf, r.URL.Path)
	if err != nil {
		s.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *site) writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode json", zap.Error(err))
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type notFoundPage struct {
	Path string
}

var notFoundTmpl = pageTemplate("notfound", notFoundHTML)

const notFoundHTML = `
{{define "styles"}}
        .not-found {
            align-items: flex-start;
            gap: 1rem;
        }

        .not-found .code {
            font-size: 4rem;
            font-weight: 700;
            line-height: 1;
            color: #cbd5e1;
        }

        .not-found code {
            font-family: 'JetBrains Mono', 'SF Mono', monospace;
            color: #334155;
        }
{{end}}
{{define "content"}}
<div class="page not-found">
    <p class="code">404</p>
    <h1>Nothing lives at <code>{{.Path}}</code></h1>
    <p class="muted">The arena only has a leaderboard and a battle workspace.</p>
    <a href="/" class="button-dark">← Back to leaderboard</a>
</div>
{{end}}
`
