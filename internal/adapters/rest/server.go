package rest

import (
	"context"
	"net/http"

	core_port "idx-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigins []string,
	listingsHandler *ListingsHandler,
	authHandlers *AuthHandlers,
	favoritesHandlers *FavoritesHandlers,
	alertsHandlers *AlertsHandlers,
	authMiddleware *AuthMiddleware,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public search surface
		r.Get("/properties", listingsHandler.SearchProperties)
		r.Get("/properties/{propertyID}", listingsHandler.GetPropertyByID)

		r.Post("/auth/register", authHandlers.Register)
		r.Post("/auth/login", authHandlers.Login)

		// Dashboard routes require a valid token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandlers.Me)

			r.Get("/favorites", favoritesHandlers.List)
			r.Post("/favorites/{propertyID}", favoritesHandlers.Add)
			r.Delete("/favorites/{propertyID}", favoritesHandlers.Remove)

			r.Post("/saved-searches", alertsHandlers.CreateSavedSearch)
			r.Get("/saved-searches", alertsHandlers.ListSavedSearches)

			r.Get("/notifications", alertsHandlers.ListNotifications)
			r.Post("/notifications/{notificationID}/read", alertsHandlers.MarkNotificationRead)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
