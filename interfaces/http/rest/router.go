package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/services"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/config"
	"github.com/IbuprofenLover/brewing-stand/interfaces/http/rest/handlers"
	"github.com/IbuprofenLover/brewing-stand/interfaces/http/rest/middleware"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
	"github.com/IbuprofenLover/brewing-stand/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	coffees      *services.CoffeeService
	reviews      *services.ReviewService
	metrics      *observability.Collector
	errorHandler *errors.ErrorHandler
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	coffees *services.CoffeeService,
	reviews *services.ReviewService,
	metrics *observability.Collector,
	errorHandler *errors.ErrorHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		coffees:      coffees,
		reviews:      reviews,
		metrics:      metrics,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(rt.errorHandler.Middleware)

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "If-None-Match", middleware.RequestIDHeader},
			ExposedHeaders:   []string{"ETag", "Location", middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.Handle(w, r, errors.NewNotFoundError("route").WithDetail("path", r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.Handle(w, r, &errors.AppError{
			Type:       errors.ErrorTypeValidation,
			Message:    "method not allowed",
			Code:       "METHOD_NOT_ALLOWED",
			HTTPStatus: http.StatusMethodNotAllowed,
		})
	})

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/coffees", func(r chi.Router) {
			coffeeHandler := handlers.NewCoffeeHandler(rt.coffees, rt.errorHandler, rt.logger)
			r.Get("/", coffeeHandler.ListCoffees)
			r.Post("/", coffeeHandler.CreateCoffee)
			r.Get("/{name}", coffeeHandler.GetCoffee)
			r.Put("/{name}", coffeeHandler.UpdateCoffee)
			r.Delete("/{name}", coffeeHandler.DeleteCoffee)
		})

		r.Route("/reviews", func(r chi.Router) {
			reviewHandler := handlers.NewReviewHandler(rt.reviews, rt.errorHandler, rt.logger)
			r.Get("/", reviewHandler.ListReviews)
			r.Post("/", reviewHandler.CreateReview)
			r.Get("/{id}", reviewHandler.GetReview)
			r.Put("/{id}", reviewHandler.UpdateReview)
			r.Delete("/{id}", reviewHandler.DeleteReview)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

type readiness struct {
	Status  string `json:"status"`
	Coffees int    `json:"coffees"`
	Reviews int    `json:"reviews"`
}

// readinessCheck reports the live entity counts. The stores are in memory,
// so the service is ready as soon as it is serving.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	body := readiness{Status: "ready", Coffees: rt.coffees.Count(), Reviews: rt.reviews.Count()}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rt.logger.Error("Failed to encode readiness", zap.Error(err))
	}
}
