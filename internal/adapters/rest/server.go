package rest

import (
	"context"
	"fmt"
	"net/http"
	core_port "property-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the REST API server.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer wires the router: public listing and blog reads, token-
// protected writes and the favorites group.
func NewServer(
	port string,
	allowedOrigins []string,
	properties *PropertiesHandler,
	auth *AuthHandler,
	favorites *FavoritesHandler,
	blog *BlogHandler,
	am *AuthMiddleware,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			// the listing works anonymously, the identity only feeds
			// the myProperties owner scope
			r.With(am.Optional).Get("/", properties.SearchProperties)
			r.Get("/stats/summary", properties.GetStats)
			r.Get("/{propertyID}", properties.GetProperty)

			r.Group(func(r chi.Router) {
				r.Use(am.Authenticate)
				r.Post("/", properties.CreateProperty)
				r.Put("/{propertyID}", properties.UpdateProperty)
				r.Delete("/{propertyID}", properties.DeleteProperty)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
			r.With(am.Authenticate).Get("/me", auth.Me)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(am.Authenticate)
			r.Get("/", favorites.GetUserFavorites)
			r.Post("/", favorites.AddToFavorites)
			r.Get("/{propertyID}", favorites.CheckFavorite)
			r.Delete("/{propertyID}", favorites.RemoveFromFavorites)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blog.ListPosts)
			r.Get("/{slug}", blog.GetPost)
			r.With(am.Authenticate, am.RequireRole("admin", "agent")).Post("/", blog.CreatePost)
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

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
