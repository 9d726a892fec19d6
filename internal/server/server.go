package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/config"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	Config     *config.Config
	Gateway    *gateway.Gateway
	Auth       services.AuthService
	Prayers    services.PrayerService
	Videos     services.VideoService
	Schedule   services.ScheduleService
	Bible      services.BibleService
	Devotional services.DevotionalService
}

// NewRouter assembles the HTTP API.
func NewRouter(d Deps) http.Handler {
	authHandler := &AuthHandler{Auth: d.Auth, JWTSecret: d.Config.JWTSecret}
	adminHandler := &AdminHandler{Auth: d.Auth}
	prayerHandler := &PrayerHandler{Prayers: d.Prayers}
	videoHandler := &VideoHandler{Videos: d.Videos}
	scheduleHandler := &ScheduleHandler{Schedule: d.Schedule}
	settingsHandler := &SettingsHandler{Gateway: d.Gateway}
	bibleHandler := &BibleHandler{Bible: d.Bible, Devotional: d.Devotional}

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		// Public reads: the community site shows these without a login.
		r.Get("/prayers", prayerHandler.List)
		r.Post("/prayers", prayerHandler.Add)
		r.Post("/prayers/{id}/pray", prayerHandler.Pray)
		r.Get("/videos", videoHandler.List)
		r.Get("/schedule", scheduleHandler.List)
		r.Get("/schedule/live", scheduleHandler.Live)
		r.Get("/bible/books", bibleHandler.Books)
		r.Get("/bible/{book}/{chapter}", bibleHandler.Chapter)
		r.Get("/devotional", bibleHandler.Daily)

		// Pastoral routes.
		r.Group(func(r chi.Router) {
			r.Use(Auth(d.Config.JWTSecret))

			r.Delete("/prayers/{id}", prayerHandler.Delete)
			r.Post("/videos", videoHandler.Add)
			r.Delete("/videos/{id}", videoHandler.Delete)
			r.Post("/schedule", scheduleHandler.Add)
			r.Post("/schedule/{id}/live", scheduleHandler.SetLive)
			r.Delete("/schedule/{id}", scheduleHandler.Delete)
			r.Delete("/bible/cache", bibleHandler.ClearCache)

			// Admin routes.
			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)

				r.Get("/admin/pending", adminHandler.Pending)
				r.Post("/admin/approve/{username}", adminHandler.Approve)
				r.Post("/admin/reject/{username}", adminHandler.Reject)
				r.Get("/settings/cloud", settingsHandler.Get)
				r.Put("/settings/cloud", settingsHandler.Put)
			})
		})
	})

	return r
}
