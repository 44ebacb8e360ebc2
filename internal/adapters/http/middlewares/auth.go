package middlewares

import (
	"context"
	"net/http"
	"strings"

	"quizarena/internal/ports"
)

type contextKey string

const UserIDKey contextKey = "userID"

// WithUserID injeta o ID do usuário autenticado no contexto.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// AuthMiddleware cria um middleware para validação de JWT (Authorization: Bearer <token>).
func AuthMiddleware(tokenService ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "Autenticação requerida")
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				writeUnauthorized(w, "Formato de token inválido (esperado: Bearer <token>)")
				return
			}

			userID, err := tokenService.ValidateToken(tokenString)
			if err != nil {
				writeUnauthorized(w, "Token inválido ou expirado")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}
		return http.HandlerFunc(fn)
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","message":"` + msg + `"}`))
}
