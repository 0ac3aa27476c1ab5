package products

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ProductHub/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	APIKey           string
	WriteLimitPerMin int

	MetricsEnabled bool
	MetricsToken   string
}

func NewHandler(store Store, deps HTTPDeps) http.Handler {
	s := &Server{Store: store, Log: deps.Log}

	r := chi.NewRouter()
	setupMiddleware(r, deps)
	setupMetrics(r, store, deps)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz)

	r.Get("/", s.root)

	r.Route("/api/products", func(pr chi.Router) {
		pr.Get("/", kit.Handle(s.list))
		// stats is a static segment and must resolve before the {id} wildcard.
		pr.Get("/stats", kit.Handle(s.stats))
		pr.Get("/{id}", kit.Handle(s.get))

		pr.Group(func(wr chi.Router) {
			if deps.WriteLimitPerMin > 0 {
				wr.Use(kit.NewRateLimiter(deps.WriteLimitPerMin, time.Minute).Middleware)
			}
			wr.Use(RequireAPIKey(deps.APIKey))

			wr.Post("/", kit.Handle(s.create))
			wr.Put("/{id}", kit.Handle(s.update))
			wr.Delete("/{id}", kit.Handle(s.remove))
		})
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(deps.Log))
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, store Store, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "products_count",
			Help: "Products currently stored",
		},
		func() float64 { return float64(store.Len()) },
	))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

// routeNotFound answers both unknown paths and known paths hit with the
// wrong method, so every API failure carries the same error envelope.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	kit.WriteError(w, kit.NotFound("route not found"))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
