package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

//go:embed assets/index.html
var indexTmpl string

type pageParams struct {
	Title         string
	GeneratingAll bool
	Banners       []bannerResponse
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
)

// Page renders the banner studio. The initial slots are rendered on the
// server; the embedded script keeps them current by polling /v1/banners.
func (a *App) Page(w http.ResponseWriter, r *http.Request) {
	pageOnce.Do(func() {
		pageTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
			// image refs are data URIs built by the renderer
			"imageURL": func(ref string) template.URL { return template.URL(ref) },
		}).Parse(indexTmpl))
	})

	snap := a.snapshot()
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageParams{
		Title:         "XOX247 Banner Architect",
		GeneratingAll: snap.GeneratingAll,
		Banners:       snap.Banners,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: render page")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
