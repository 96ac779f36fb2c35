package handler

import (
	"net/http"

	"customer-onboarding/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes : зависимости маршрутизатора
type Routes struct {
	Users          *UserHandler
	Authentication *AuthenticationHandler
	Accounts       *AccountHandler
	Profiles       *ProfileHandler
	JWTService     *security.JWTService
	LoginLimiter   *security.LoginRateLimiter
	Metrics        http.Handler
	Swagger        http.Handler
	// TrustProxyHeaders : брать адрес клиента из X-Forwarded-For / X-Real-IP
	TrustProxyHeaders bool
}

func RegisterRoutes(r chi.Router, routes Routes) {
	r.Use(middleware.RequestID)
	if routes.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)

	if routes.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", routes.Metrics)
	}
	if routes.Swagger != nil {
		r.Method(http.MethodGet, "/swagger/*", routes.Swagger)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", routes.Users.RegisterUser)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if routes.LoginLimiter != nil {
					r.Use(routes.LoginLimiter.Middleware)
				}
				r.Post("/login", routes.Authentication.Login)
			})
			r.Post("/refresh", routes.Authentication.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(security.JWTMiddleware(routes.JWTService))
				r.Post("/logout", routes.Authentication.Logout)
			})
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(security.JWTMiddleware(routes.JWTService))
			r.Post("/", routes.Accounts.OpenAccount)
			r.Get("/{customer_id}", routes.Accounts.ListAccounts)
			r.Put("/{customer_id}/{account_id}", routes.Accounts.UpdateAccount)
		})

		if routes.Profiles != nil {
			r.Route("/customers/{customer_id}/profile", func(r chi.Router) {
				r.Use(security.JWTMiddleware(routes.JWTService))
				r.Post("/", routes.Profiles.AddProfile)
				r.Get("/", routes.Profiles.GetProfile)
				r.Put("/", routes.Profiles.UpdateProfile)
			})
		}
	})
}
