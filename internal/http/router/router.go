// Package router arma la tabla de rutas HTTP del servicio.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/passcode/internal/app"
	httpx "github.com/dropDatabas3/passcode/internal/http"
	authctl "github.com/dropDatabas3/passcode/internal/http/controllers/auth"
	vaultctl "github.com/dropDatabas3/passcode/internal/http/controllers/vault"
	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	"github.com/dropDatabas3/passcode/internal/http/helpers"
	"github.com/dropDatabas3/passcode/internal/http/middlewares"
	authsvc "github.com/dropDatabas3/passcode/internal/http/services/auth"
	vaultsvc "github.com/dropDatabas3/passcode/internal/http/services/vault"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
)

// New construye el handler raíz: middlewares globales, endpoints de salud
// y la superficie /api.
func New(c *app.Container, metricsHandler http.Handler) http.Handler {
	authServices := authsvc.NewServices(authsvc.Deps{
		Users:  c.Store.Users(),
		Issuer: c.Issuer,
	})
	authControllers := authctl.NewControllers(authServices)

	credService := vaultsvc.NewCredentialService(vaultsvc.Deps{
		Credentials: c.Store.Credentials(),
	})
	credController := vaultctl.NewCredentialsController(credService)

	r := chi.NewRouter()

	// Infraestructura: health y métricas quedan fuera de /api y sin auth.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := c.Store.Ping(ctx); err != nil {
			logger.From(req.Context()).Warn("readyz: store ping failed", logger.Err(err))
			helpers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authControllers.Register.Register)
		api.Post("/auth/login", authControllers.Login.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(middlewares.RequireAuth(c.Issuer))
			protected.Get("/auth/me", authControllers.Me.Me)
			protected.Get("/credentials", credController.List)
			protected.Post("/credentials", credController.Create)
			protected.Delete("/credentials/{id}", credController.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})

	// Middlewares globales, de afuera hacia adentro.
	return middlewares.Chain(r,
		middlewares.WithRequestID(),
		middlewares.WithLogging(),
		middlewares.WithRecover(),
		httpx.WithMetrics,
		middlewares.WithCORS(c.Cfg.Server.CORSAllowedOrigins),
	)
}
