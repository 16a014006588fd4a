package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/olegamobile/lets-play/app"
	"github.com/olegamobile/lets-play/handlers"
	"github.com/olegamobile/lets-play/middleware"
	"github.com/olegamobile/lets-play/utils"
)

// requestTimeout bounds every request
const requestTimeout = 60 * time.Second

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.CleanPath)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recover(deps.Logger))
	r.Use(chimw.Timeout(requestTimeout))

	// CORS answers preflight before the access policy runs
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.CORS.AllowedOrigins,
		AllowedMethods: deps.Config.CORS.AllowedMethods,
		AllowedHeaders: deps.Config.CORS.AllowedHeaders,
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	}))

	// Identity, then access decision
	r.Use(deps.AuthMiddleware.Authenticate)
	r.Use(deps.PolicyMiddleware.EnforcePolicy)

	health := handlers.NewHealthHandler(deps.DB, deps.Logger)
	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.Tokens, deps.Logger)
	userHandler := handlers.NewUserHandler(deps.UserService, deps.Logger)
	productHandler := handlers.NewProductHandler(deps.ProductService, deps.Logger)

	// Health check endpoints
	r.Get("/healthz", health.HandleHealth)
	r.Get("/readyz", health.HandleReadiness)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.HandleRegister)
		r.Get("/me", userHandler.HandleMe)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.HandleList)
		r.Post("/", productHandler.HandleCreate)
		r.Get("/{id}", productHandler.HandleGet)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
