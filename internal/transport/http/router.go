package http

import (
	"net/http"

	_ "github.com/Isha-commits965/wellness-tracker-backend/docs" // registers the OpenAPI document
	"github.com/Isha-commits965/wellness-tracker-backend/internal/metrics"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// RouterConfig carries the transport-level knobs of the router
type RouterConfig struct {
	ServiceName        string
	Version            string
	AllowedOrigins     []string
	RateLimitPerMinute int
	MetricsPath        string // empty disables /metrics
}

// Handlers groups the per-domain handlers
type Handlers struct {
	Auth      *AuthHandler
	Habits    *HabitHandler
	Moods     *MoodHandler
	Journal   *JournalHandler
	Goals     *GoalHandler
	Analytics *AnalyticsHandler
}

// NewRouter sets up all HTTP routes
func NewRouter(cfg RouterConfig, h Handlers, validator TokenValidator, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(Logger(log))
	r.Use(Metrics(metrics.Get()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(NewRateLimiter(cfg.RateLimitPerMinute).Handler)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the " + cfg.ServiceName + " API",
			"version": cfg.Version,
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	if cfg.MetricsPath != "" {
		r.Handle(cfg.MetricsPath, promhttp.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(Auth(validator, log)).Get("/me", h.Auth.Me)
		})

		// Everything below requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(Auth(validator, log))

			r.Route("/habits", func(r chi.Router) {
				r.Post("/", h.Habits.CreateHabit)
				r.Get("/", h.Habits.ListHabits)
				r.Get("/streaks", h.Habits.Streaks)
				r.Post("/check-ins", h.Habits.CheckIn)
				r.Get("/check-ins", h.Habits.ListCheckIns)
				r.Put("/check-ins/{checkInID}", h.Habits.UpdateCheckIn)
				r.Get("/{habitID}", h.Habits.GetHabit)
				r.Put("/{habitID}", h.Habits.UpdateHabit)
				r.Delete("/{habitID}", h.Habits.DeleteHabit)
			})

			r.Route("/moods", func(r chi.Router) {
				r.Post("/", h.Moods.Create)
				r.Get("/", h.Moods.List)
				r.Get("/trends", h.Moods.Trends)
				r.Get("/stats/weekly", h.Moods.WeeklyStats)
				r.Get("/{entryID}", h.Moods.Get)
				r.Put("/{entryID}", h.Moods.Update)
				r.Delete("/{entryID}", h.Moods.Delete)
			})

			r.Route("/journal", func(r chi.Router) {
				r.Post("/", h.Journal.Create)
				r.Get("/", h.Journal.List)
				r.Get("/stats/weekly", h.Journal.WeeklyStats)
				r.Get("/{entryID}", h.Journal.Get)
				r.Put("/{entryID}", h.Journal.Update)
				r.Delete("/{entryID}", h.Journal.Delete)
				r.Post("/{entryID}/regenerate-ai", h.Journal.Regenerate)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", h.Goals.Create)
				r.Get("/", h.Goals.List)
				r.Get("/stats/overview", h.Goals.Overview)
				r.Get("/{goalID}", h.Goals.Get)
				r.Put("/{goalID}", h.Goals.Update)
				r.Delete("/{goalID}", h.Goals.Delete)
				r.Post("/{goalID}/complete", h.Goals.Complete)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", h.Analytics.Dashboard)
				r.Get("/habits/streaks", h.Analytics.HabitStreaks)
				r.Get("/moods/trends", h.Analytics.MoodTrends)
				r.Get("/weekly-stats", h.Analytics.WeeklyStats)
				r.Get("/calendar/{year}/{month}", h.Analytics.Calendar)
			})
		})
	})

	return r
}
