package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ashford-menswear/catalog-search/pkg/health"
	"github.com/ashford-menswear/catalog-search/pkg/middleware"

	"github.com/ashford-menswear/catalog-search/internal/service"
)

// NewRouter creates a chi router with all catalog search routes registered.
func NewRouter(
	searchService *service.SearchService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog-search"))
	r.Use(middleware.Tracing("catalog-search"))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	searchHandler := NewSearchHandler(searchService, logger)

	r.Route("/api/v1/catalog", func(r chi.Router) {
		// Search responses vary only with the catalog, so short client-side
		// caching is safe.
		r.With(middleware.CacheControl(60)).Get("/search", searchHandler.Search)
		r.Post("/search", searchHandler.SearchPost)
	})

	return r
}
