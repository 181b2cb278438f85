package router

import (
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/handler"
	"github.com/bynara/MeliProductDetail/internal/middleware"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Product       *handler.ProductHandler
	Seller        *handler.SellerHandler
	Review        *handler.ReviewHandler
	Category      *handler.CategoryHandler
	PaymentMethod *handler.PaymentMethodHandler
	Auth          *handler.AuthHandler
	Info          model.APIInfo
}

// New creates a new HTTP router with all routes and middleware configured.
// HTTP metrics are registered with reg and exposed on /metrics.
func New(h Handlers, tokens middleware.TokenValidator, reg *prometheus.Registry, logger zerolog.Logger) http.Handler {
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()

	// Applied in order: RequestID -> Logging -> Recovery -> CORS -> Metrics
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS)
	r.Use(metrics.Handler)
	r.Use(chimiddleware.StripSlashes)

	r.Get("/", handler.Info(h.Info))
	r.Get("/health", handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/token", h.Auth.Token)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Product.List)
		r.Get("/{id}", h.Product.GetByID)
		r.Get("/{id}/similar", h.Product.Similar)
	})

	r.Route("/sellers", func(r chi.Router) {
		r.Get("/", h.Seller.List)
		r.Get("/{id}", h.Seller.GetByID)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Category.List)
		r.Get("/{id}", h.Category.GetByID)
	})

	r.Route("/payment-methods", func(r chi.Router) {
		r.Use(middleware.BearerAuth(tokens, logger))

		r.Get("/", h.PaymentMethod.List)
		r.Get("/{id}", h.PaymentMethod.GetByID)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.Review.List)
		r.Get("/{id}", h.Review.GetByID)
		r.Get("/product/{id}", h.Review.ListByProduct)
	})

	return r
}
