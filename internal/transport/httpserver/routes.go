package httpserver

import (
	"net/http"
	"os"

	"diet-profile-go/internal/config"
	"diet-profile-go/internal/transport/httpserver/handler"
	authmw "diet-profile-go/internal/transport/httpserver/middleware"
	"diet-profile-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.BearerAuth, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.HTTP.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(authmw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.HTTP.RequestTimeout))
	}
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Get("/health", handlers.Common.Health)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	} else if cfg.StaticDir != "" {
		log.Warn("http: static dir not found, /static disabled", "dir", cfg.StaticDir)
	}

	r.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			r.Use(authmw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware)
		}
		r.Post("/signup", handlers.Account.SignUp)
		r.Post("/login", handlers.Account.Login)
	})

	r.Get("/dietary_restrictions", handlers.Preferences.ListDietaryRestrictions)
	r.Get("/allergies", handlers.Preferences.ListAllergies)
	r.Get("/servings", handlers.Preferences.ListServings)

	r.Group(func(r chi.Router) {
		if cfg.Auth.EnforceOwnership {
			r.Use(auth.Middleware)
			r.Use(authmw.RequireOwner("id"))
		}
		r.Put("/user/{id}/complete_onboarding", handlers.Account.CompleteOnboarding)
		r.Get("/user_info/{id}", handlers.Account.UserInfo)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Get("/user/dietary_restrictions", handlers.Preferences.GetDietaryRestrictions)
		r.Post("/user/dietary_restrictions", handlers.Preferences.SaveDietaryRestrictions)
		r.Delete("/user/dietary_restrictions/{id}", handlers.Preferences.DeleteDietaryRestriction)

		r.Get("/user/allergies", handlers.Preferences.GetAllergies)
		r.Post("/user/allergies", handlers.Preferences.SaveAllergies)
		r.Delete("/user/allergies/{id}", handlers.Preferences.DeleteAllergy)

		r.Get("/user/servings", handlers.Preferences.GetServing)
		r.Post("/user/servings", handlers.Preferences.SaveServing)

		r.Get("/user/lab_result", handlers.LabResults.Latest)
		r.Post("/upload_lab_result", handlers.LabResults.Upload)
	})

	return r
}
