package middlewares

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	jwtx "github.com/dropDatabas3/passcode/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <JWT> y guarda la identidad en el
// contexto. Sin header responde 401; con token inválido o expirado, 403.
// Corta el pipeline: ningún handler protegido corre sin identidad resuelta.
func RequireAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				httperrors.WriteError(w, httperrors.ErrTokenMissing)
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := issuer.Parse(raw)
			if err != nil {
				// Motivo deliberadamente uniforme: firma rota, malformado y
				// expirado responden igual.
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				httperrors.WriteError(w, httperrors.ErrTokenInvalid)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = WithUserID(ctx, claims.SubjectID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
