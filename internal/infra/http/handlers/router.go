package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
)

type RouterDeps struct {
	Log         zerolog.Logger
	CORSOrigins []string
	Sessions    middleware.SessionResolver

	Leads   *LeadHandler
	Admin   *AdminLeadHandler
	Content *ContentHandler
	Auth    *AuthHandler
	Health  *HealthHandler
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", d.Leads.CaptureLead)
	r.Get("/portfolio/videos", d.Content.PublicVideos)
	r.Get("/portfolio/photos", d.Content.PublicPhotos)
	r.Get("/team", d.Content.PublicTeam)
	r.Post("/auth/login", d.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(d.Sessions))

		r.Post("/auth/logout", d.Auth.Logout)
		r.Get("/auth/session", d.Auth.Session)

		r.Route("/admin", func(r chi.Router) {
			r.Route("/leads", func(r chi.Router) {
				r.Get("/", d.Admin.List)
				r.Get("/stats", d.Admin.Stats)
				r.Get("/{id}", d.Admin.Get)
				r.Patch("/{id}/status", d.Admin.SetStatus)
				r.Put("/{id}/notes", d.Admin.SetNotes)
				r.Delete("/{id}", d.Admin.Delete)
			})

			r.Route("/portfolio/videos", func(r chi.Router) {
				r.Get("/", d.Content.ListVideos)
				r.Post("/", d.Content.CreateVideo)
				r.Put("/{id}", d.Content.UpdateVideo)
				r.Delete("/{id}", d.Content.DeleteVideo)
			})

			r.Route("/portfolio/photos", func(r chi.Router) {
				r.Get("/", d.Content.ListPhotos)
				r.Post("/", d.Content.CreatePhoto)
				r.Put("/{id}", d.Content.UpdatePhoto)
				r.Delete("/{id}", d.Content.DeletePhoto)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", d.Content.ListTeam)
				r.Post("/", d.Content.CreateTeamMember)
				r.Put("/{id}", d.Content.UpdateTeamMember)
				r.Delete("/{id}", d.Content.DeleteTeamMember)
			})

			r.Post("/uploads/{kind}", d.Content.Upload)
		})
	})

	return r
}
