package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bannerarchitect/internal/http/handlers"
	"bannerarchitect/internal/infra"
	"bannerarchitect/internal/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(allowedOrigins),
	)

	r.Get("/", app.Page)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", app.ListBanners)
			r.Post("/generate", app.GenerateAll)
			r.Get("/stats", app.StatsSummary)
			r.Get("/archive", app.DownloadArchive)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.GetBanner)
				r.Post("/generate", app.GenerateBanner)
				r.Get("/download", app.DownloadBanner)
			})
		})
	})

	return r
}
