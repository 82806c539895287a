package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/quantity262/Myweb/internal/api/handlers"
	"github.com/quantity262/Myweb/internal/metrics"
	"github.com/quantity262/Myweb/internal/middleware"
	"github.com/quantity262/Myweb/internal/models"
	"github.com/quantity262/Myweb/internal/services"
)

type RouterDeps struct {
	Auth     *middleware.AuthMiddleware
	Users    *services.UserService
	Catalog  *services.CatalogService
	Messages *services.MessageService
}

func NewRouter(deps RouterDeps) http.Handler {
	authH := handlers.NewAuthHandler(deps.Users)
	contentH := handlers.NewContentHandler(deps.Catalog)
	messageH := handlers.NewMessageHandler(deps.Messages)
	adminH := handlers.NewAdminHandler(deps.Users, deps.Catalog, deps.Messages)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Auth)
			r.Get("/auth/me", authH.Me)
			r.Post("/auth/change-password", authH.ChangePassword)
		})

		// ---------- content (public) ----------
		r.Get("/content/documents", contentH.ListDocuments)
		r.Get("/content/documents/{filename}", contentH.GetDocument)

		// ---------- messages ----------
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Auth)
			r.Get("/messages", messageH.List)
			r.Post("/messages", messageH.Create)
			r.Delete("/messages/{id}", messageH.Delete)
		})

		// ---------- admin ----------
		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.Auth.Auth, middleware.RequireRole(models.RoleAdmin))

			r.Get("/users", adminH.ListUsers)
			r.Post("/users/{id}/reset-password", adminH.ResetPassword)
			r.Delete("/users/{id}", adminH.DeleteUser)
			r.Patch("/users/{id}/role", adminH.UpdateUserRole)

			r.Get("/documents", adminH.ListDocuments)
			r.Post("/documents", adminH.UpsertDocument)
			r.Delete("/documents/{id}", adminH.DeleteDocument)
			r.Post("/documents/sync", adminH.SyncDocuments)

			r.Get("/messages", adminH.ListMessages)
		})
	})

	return r
}
