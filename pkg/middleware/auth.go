package middleware

import (
	"net/http"
	"strings"

	"ecommerce-api/internal/identity"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

// AuthToken resolves the Bearer session token into a caller uid and puts
// it on the request context. Handlers downstream receive an already
// authenticated identity.
func AuthToken(idp identity.Provider, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			uid, err := idp.VerifyToken(r.Context(), parts[1])
			if err != nil {
				logger.Warn("Token verification failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUIDContext(r.Context(), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
