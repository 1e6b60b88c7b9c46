package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/straye-as/fieldservice-api/docs" // Import generated swagger docs
	"github.com/straye-as/fieldservice-api/internal/config"
	"github.com/straye-as/fieldservice-api/internal/database"
	"github.com/straye-as/fieldservice-api/internal/http/handler"
	"github.com/straye-as/fieldservice-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReadinessCheck probes one dependency for /health/ready
type ReadinessCheck func(ctx context.Context) error

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	db                  *gorm.DB
	rateLimiter         *middleware.RateLimiter
	readiness           map[string]ReadinessCheck
	offerHandler        *handler.OfferHandler
	serviceOrderHandler *handler.ServiceOrderHandler
	jobHandler          *handler.JobHandler
	dispatchHandler     *handler.DispatchHandler
	entryHandler        *handler.EntryHandler
	articleHandler      *handler.ArticleHandler
	settingsHandler     *handler.SettingsHandler
	documentHandler     *handler.DocumentHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	offerHandler *handler.OfferHandler,
	serviceOrderHandler *handler.ServiceOrderHandler,
	jobHandler *handler.JobHandler,
	dispatchHandler *handler.DispatchHandler,
	entryHandler *handler.EntryHandler,
	articleHandler *handler.ArticleHandler,
	settingsHandler *handler.SettingsHandler,
	documentHandler *handler.DocumentHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		rateLimiter:         rateLimiter,
		readiness:           make(map[string]ReadinessCheck),
		offerHandler:        offerHandler,
		serviceOrderHandler: serviceOrderHandler,
		jobHandler:          jobHandler,
		dispatchHandler:     dispatchHandler,
		entryHandler:        entryHandler,
		articleHandler:      articleHandler,
		settingsHandler:     settingsHandler,
		documentHandler:     documentHandler,
	}
}

// AddReadinessCheck registers an extra dependency probe next to the database
func (rt *Router) AddReadinessCheck(name string, check ReadinessCheck) {
	rt.readiness[name] = check
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/health/db", rt.databaseHealth)
	r.Get("/health/ready", rt.readinessHealth)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if d := rt.cfg.Server.RequestTimeoutDuration(); d > 0 {
			r.Use(timeout(d))
		}

		// Offers and sales
		r.Route("/offers", func(r chi.Router) {
			r.Get("/", rt.offerHandler.List)
			r.Post("/", rt.offerHandler.Create)
			r.Get("/stats", rt.offerHandler.StatusCounts)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.offerHandler.GetByID)
				r.Put("/", rt.offerHandler.Update)
				r.Delete("/", rt.offerHandler.Delete)
				r.Get("/history", rt.offerHandler.History)
				r.Post("/send", rt.offerHandler.Send)
				r.Post("/accept", rt.offerHandler.Accept)
				r.Post("/decline", rt.offerHandler.Decline)
				r.Post("/cancel", rt.offerHandler.Cancel)
				r.Post("/renew", rt.offerHandler.Renew)
				r.Post("/convert", rt.offerHandler.Convert)
			})
		})
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", rt.offerHandler.ListSales)
			r.Get("/{id}", rt.offerHandler.GetSale)
		})

		// Service orders and the work beneath them
		r.Route("/service-orders", func(r chi.Router) {
			r.Get("/", rt.serviceOrderHandler.List)
			r.Post("/", rt.serviceOrderHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.serviceOrderHandler.GetByID)
				r.Put("/", rt.serviceOrderHandler.Update)
				r.Delete("/", rt.serviceOrderHandler.Delete)
				r.Get("/status", rt.serviceOrderHandler.StatusWindow)
				r.Post("/status/{action}", rt.serviceOrderHandler.Transition)
				r.Get("/history", rt.serviceOrderHandler.History)
				r.Post("/recalculate", rt.serviceOrderHandler.Recalculate)
				r.Get("/time-summary", rt.serviceOrderHandler.TimeSummary)

				r.Get("/jobs", rt.jobHandler.ListByServiceOrder)
				r.Post("/jobs", rt.jobHandler.Create)
				r.Post("/dispatches", rt.dispatchHandler.Create)

				rt.entryRoutes(r)
				r.Route("/dispatches/{dispatchId}", rt.entryRoutes)
			})
		})

		r.Route("/jobs/{id}", func(r chi.Router) {
			r.Get("/", rt.jobHandler.GetByID)
			r.Put("/", rt.jobHandler.Update)
			r.Delete("/", rt.jobHandler.Delete)
			r.Post("/status/{action}", rt.jobHandler.Transition)
			r.Post("/cancel", rt.jobHandler.Cancel)
			r.Get("/history", rt.jobHandler.History)
		})

		r.Route("/dispatches", func(r chi.Router) {
			r.Get("/", rt.dispatchHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.dispatchHandler.GetByID)
				r.Put("/", rt.dispatchHandler.Update)
				r.Delete("/", rt.dispatchHandler.Delete)
				r.Get("/status", rt.dispatchHandler.StatusWindow)
				r.Post("/status/{action}", rt.dispatchHandler.Transition)
				r.Post("/cancel", rt.dispatchHandler.Cancel)
				r.Get("/history", rt.dispatchHandler.History)
			})
		})

		// Entries addressed by their own id
		r.Delete("/time-entries/{id}", rt.entryHandler.DeleteTime)
		r.Route("/expenses/{id}", func(r chi.Router) {
			r.Post("/approve", rt.entryHandler.ApproveExpense)
			r.Post("/reject", rt.entryHandler.RejectExpense)
			r.Delete("/", rt.entryHandler.DeleteExpense)
		})
		r.Delete("/materials/{id}", rt.entryHandler.DeleteMaterial)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", rt.articleHandler.List)
			r.Post("/", rt.articleHandler.Create)
			r.Get("/{id}", rt.articleHandler.GetByID)
			r.Put("/{id}", rt.articleHandler.Update)
			r.Delete("/{id}", rt.articleHandler.Delete)
		})

		r.Route("/settings/pdf", func(r chi.Router) {
			r.Get("/", rt.settingsHandler.Get)
			r.Patch("/", rt.settingsHandler.Patch)
			r.Post("/reset", rt.settingsHandler.Reset)
			r.Post("/theme", rt.settingsHandler.ApplyTheme)
			r.Get("/themes", rt.settingsHandler.Themes)
			r.Get("/export", rt.settingsHandler.Export)
			r.Post("/import", rt.settingsHandler.Import)
		})

		// Rendering is CPU-bound, so every route that renders shares a tighter limit
		r.Group(func(r chi.Router) {
			r.Use(rt.rateLimiter.LimitRenders)

			r.Route("/documents", func(r chi.Router) {
				r.Get("/{id}/download", rt.documentHandler.Download)
				r.Delete("/{id}", rt.documentHandler.Delete)
				r.Route("/{entity}/{id}", func(r chi.Router) {
					r.Get("/", rt.documentHandler.ListStored)
					r.Post("/", rt.documentHandler.Store)
					r.Get("/pdf", rt.documentHandler.Render)
					r.Post("/share", rt.documentHandler.Share)
					r.Post("/print", rt.documentHandler.Print)
					r.Post("/preview", rt.documentHandler.OpenPreview)
				})
			})

			r.Route("/previews/{id}", func(r chi.Router) {
				r.Get("/", rt.documentHandler.PreviewStatus)
				r.Post("/refresh", rt.documentHandler.RefreshPreview)
				r.Get("/content", rt.documentHandler.PreviewContent)
				r.Delete("/", rt.documentHandler.ClosePreview)
			})

			r.Get("/exports/offers", rt.documentHandler.ExportOffers)
			r.Get("/exports/service-orders/{id}/timesheet", rt.documentHandler.ExportTimeSheet)
		})
	})

	return r
}

// entryRoutes mounts the time, expense and material collections. It is used
// both for the order itself and for a single dispatch.
func (rt *Router) entryRoutes(r chi.Router) {
	r.Get("/time", rt.entryHandler.ListTime)
	r.Post("/time", rt.entryHandler.AddTime)
	r.Get("/expenses", rt.entryHandler.ListExpenses)
	r.Post("/expenses", rt.entryHandler.AddExpense)
	r.Get("/materials", rt.entryHandler.ListMaterials)
	r.Post("/materials", rt.entryHandler.AddMaterial)
}

func timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// databaseHealth reports pool statistics
func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	writeHealth(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats": map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	})
}

// readinessHealth checks the database and every registered dependency
func (rt *Router) readinessHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]interface{})
	allHealthy := true
	record := func(name string, err error) {
		if err != nil {
			rt.logger.Error("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			allHealthy = false
			return
		}
		checks[name] = map[string]interface{}{"status": "healthy"}
	}

	record("database", database.HealthCheck(rt.db))
	for name, check := range rt.readiness {
		record(name, check(ctx))
	}

	status, code := "healthy", http.StatusOK
	if !allHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	writeHealth(w, code, map[string]interface{}{"status": status, "checks": checks})
}

func writeHealth(w http.ResponseWriter, code int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
