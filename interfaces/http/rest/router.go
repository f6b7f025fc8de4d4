package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"memoirbox-backend/infrastructure/di"
	"memoirbox-backend/interfaces/http/rest/handlers"
	"memoirbox-backend/interfaces/http/rest/middleware"
	"memoirbox-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	cfg := rt.container.Config

	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.memoirbox.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	limiter := auth.NewIPRateLimiter(cfg.RequestsPerMinute)
	authenticate := middleware.Authenticate(rt.container.JWTValidator, limiter, rt.logger)

	router.Route("/api", func(r chi.Router) {
		// Memory endpoints
		r.Route("/memories", func(r chi.Router) {
			memoryHandler := handlers.NewMemoryHandler(rt.container.MemoryService, rt.logger)

			// Public feed stays open
			r.Get("/public", memoryHandler.ListPublic)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/", memoryHandler.List)
				r.Post("/", memoryHandler.Create)
				r.Post("/upload", memoryHandler.Upload)
				r.Get("/{memoryID}", memoryHandler.Get)
				r.Put("/{memoryID}", memoryHandler.Update)
				r.Delete("/{memoryID}", memoryHandler.Delete)
				r.Post("/{memoryID}/like", memoryHandler.ToggleLike)
				r.Post("/{memoryID}/comments", memoryHandler.AddComment)
			})
		})

		// Collection endpoints
		r.Route("/collections", func(r chi.Router) {
			collectionHandler := handlers.NewCollectionHandler(rt.container.CollectionSvc, rt.logger)
			r.Use(authenticate)
			r.Get("/", collectionHandler.List)
			r.Post("/", collectionHandler.Create)
			r.Get("/{collectionID}", collectionHandler.Get)
			r.Put("/{collectionID}", collectionHandler.Update)
			r.Delete("/{collectionID}", collectionHandler.Delete)
			r.Post("/{collectionID}/memories", collectionHandler.AddMemory)
			r.Delete("/{collectionID}/memories/{memoryID}", collectionHandler.RemoveMemory)
		})

		// Timeline card endpoints
		r.Route("/timeline-cards", func(r chi.Router) {
			cardHandler := handlers.NewTimelineCardHandler(rt.container.TimelineCardSvc, rt.logger)
			r.Get("/", cardHandler.List)
			r.Post("/", cardHandler.Create)
			r.Post("/upload", cardHandler.Upload)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if err := rt.container.MongoClient.Ping(req.Context(), nil); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
