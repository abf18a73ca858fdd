package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/metrics"
)

type RouterConfig struct {
	CurrencyHandler *CurrencyHandler
	TrackerHandler  *TrackerHandler
	UserHandler     *UserHandler
	TokenManager    domain.TokenManager
	Metrics         *metrics.ConversionMetrics
	AllowedOrigins  []string
}

// NewRouter wires every endpoint. Trailing-slash routes match the original
// API surface, so chi's trailing-slash handling stays off.
func NewRouter(cfg RouterConfig) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Logger)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Requested-With"},
	}))
	if cfg.Metrics != nil {
		mux.Use(CountRequests(cfg.Metrics))
	}

	requireAuth := RequireAuth(cfg.TokenManager)

	mux.Route("/currency", func(api chi.Router) {
		api.Get("/convert/", cfg.CurrencyHandler.Convert)
		api.Get("/rate/", cfg.CurrencyHandler.Rate)
		api.Get("/currencies/", cfg.CurrencyHandler.Currencies)

		api.Group(func(authed chi.Router) {
			authed.Use(requireAuth)
			authed.Post("/convert/", cfg.CurrencyHandler.ConvertAndRecord)
			authed.Get("/history/", cfg.CurrencyHandler.History)
		})
	})

	mux.Route("/tracker", func(api chi.Router) {
		api.Use(requireAuth)

		api.Get("/categories/", cfg.TrackerHandler.ListCategories)
		api.Post("/categories/", cfg.TrackerHandler.CreateCategory)
		api.Delete("/categories/{id}/", cfg.TrackerHandler.DeleteCategory)

		api.Get("/fixed-costs/", cfg.TrackerHandler.ListFixedCosts)
		api.Post("/fixed-costs/", cfg.TrackerHandler.CreateFixedCost)
		api.Patch("/fixed-costs/{id}/", cfg.TrackerHandler.UpdateFixedCost)
		api.Delete("/fixed-costs/{id}/", cfg.TrackerHandler.DeleteFixedCost)

		api.Get("/expenses/", cfg.TrackerHandler.ListExpenses)
		api.Post("/expenses/", cfg.TrackerHandler.CreateExpense)
		api.Get("/expenses/summary/", cfg.TrackerHandler.Summary)
		api.Patch("/expenses/{id}/", cfg.TrackerHandler.UpdateExpense)
		api.Delete("/expenses/{id}/", cfg.TrackerHandler.DeleteExpense)
	})

	mux.Route("/auth", func(api chi.Router) {
		api.Post("/registration/", cfg.UserHandler.Register)
		api.Post("/login/", cfg.UserHandler.Login)
		api.Post("/token/refresh/", cfg.UserHandler.Refresh)
	})

	mux.Route("/users", func(api chi.Router) {
		api.Use(requireAuth)
		api.Get("/me/", cfg.UserHandler.Me)
		api.Patch("/me/", cfg.UserHandler.UpdateMe)
		api.Get("/{id}/", cfg.UserHandler.GetByID)
		api.Patch("/{id}/", cfg.UserHandler.UpdateMe)
	})

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
