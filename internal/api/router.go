package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/scrapwale/scrapwale-be/internal/api/handlers"
	"github.com/scrapwale/scrapwale-be/internal/auth"
	"github.com/scrapwale/scrapwale-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	sessions *auth.Manager,
	authService services.AuthServiceProvider,
	rateService services.RateServiceProvider,
	pickupService services.PickupServiceProvider,
	eventService services.EventServiceProvider,
	statsService services.StatsServiceProvider,
	uploadDir string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessions, eventService)
	rateHandler := handlers.NewRateHandler(rateService)
	pickupHandler := handlers.NewPickupHandler(pickupService)
	eventHandler := handlers.NewEventHandler(eventService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(sessions.RequireSession).Get("/check", authHandler.Check)
		})

		r.Get("/rates", rateHandler.GetAll)
		r.With(sessions.RequireSession).Put("/rates/{id}", rateHandler.Update)

		r.Post("/pickups", pickupHandler.Create)
		r.With(sessions.RequireSession).Get("/pickups", pickupHandler.GetAll)
		r.With(sessions.RequireSession).Put("/pickups/{id}/status", pickupHandler.UpdateStatus)

		r.With(sessions.RequireSession).Get("/events", eventHandler.GetRecent)
		r.With(sessions.RequireSession).Get("/stats", statsHandler.Get)
	})

	// Uploaded pickup images are served back under the path stored on the record.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
