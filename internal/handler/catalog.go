// Package handler contains the demo server's HTTP handlers.
package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/driftwoodlabs/paginate"
	"github.com/driftwoodlabs/paginate/htmlrender"
	"github.com/driftwoodlabs/paginate/internal/metrics"
	"github.com/driftwoodlabs/paginate/internal/store"
)

// CatalogHandler serves the paginated book list.
type CatalogHandler struct {
	store     store.Store
	storeName string
	logger    *slog.Logger
	perPage   int
	window    paginate.Window
	tmpl      *template.Template
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(s store.Store, storeName string, logger *slog.Logger, perPage int, window paginate.Window) *CatalogHandler {
	return &CatalogHandler{
		store:     s,
		storeName: storeName,
		logger:    logger,
		perPage:   perPage,
		window:    window,
		tmpl:      template.Must(template.New("catalog").Parse(catalogPage)),
	}
}

// List renders one page of the catalog with the entries summary and
// the pagination nav.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			page = parsed
		}
	}

	books, total, err := h.store.List(r.Context(), (page-1)*h.perPage, h.perPage)
	if err != nil {
		h.logger.Error("listing books failed", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	m, err := paginate.NewMetadata(page, h.perPage, total)
	if err != nil {
		h.logger.Error("bad pagination metadata", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if m.OutOfRange() {
		metrics.OutOfRangeRequests.Inc()
	}

	name := paginate.NameOf(store.Book{})

	opts := paginate.DefaultOptions()
	opts.Window = h.window
	opts.AutoID = true
	opts.Attrs = map[string]string{"id": htmlrender.AutoID(name)}

	renderer := &htmlrender.Renderer{
		BaseURL:   r.URL.Path,
		ParamName: opts.ParamName,
		Query:     r.URL.Query(),
	}

	var nav bytes.Buffer
	if err := htmlrender.Render(&nav, m, opts, renderer); err != nil {
		h.logger.Error("rendering pagination failed", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	metrics.SequencesBuilt.Inc()

	data := map[string]interface{}{
		"Title": name.Title(),
		"Info":  paginate.EntriesInfo(m, name),
		"Books": books,
		"Nav":   template.HTML(nav.String()),
	}

	// Render to buffer first to catch errors before writing headers
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		h.logger.Error("template execution failed", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	metrics.PageViews.WithLabelValues(h.storeName).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

const catalogPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
    .entries-info { color: #555; margin-bottom: 1rem; }
    .pagination a, .pagination span, .pagination em { padding: 0 .3rem; }
    .pagination em.current { font-style: normal; font-weight: bold; }
    .pagination .disabled { color: #aaa; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="entries-info">{{.Info}}</p>
  <ul>
    {{range .Books}}<li>{{.Title}} — {{.Author}} ({{.Year}})</li>
    {{end}}
  </ul>
  {{.Nav}}
</body>
</html>
`
