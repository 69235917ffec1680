package middlewares

import (
	"net/http"

	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
)

// WithRecover captura panics y responde 500 en lugar de tirar el proceso.
// Un request roto no puede dejar el servicio fuera de servicio.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log := logger.From(r.Context())
					log.Error("panic recovered",
						logger.Op("recover"),
						logger.Any("panic", rec),
					)
					httperrors.WriteError(w, httperrors.ErrInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
