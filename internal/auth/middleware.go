package auth

import (
	"context"
	"net/http"
	"strings"

	"StoreManager/pkg/kit"
)

type ctxKey string

const operatorKey ctxKey = "operator"

type Operator struct {
	ID       string
	Username string
	Role     string
}

func OperatorFromContext(ctx context.Context) (Operator, bool) {
	o, ok := ctx.Value(operatorKey).(Operator)
	return o, ok
}

func RequireOperator(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.UserID == "" {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), operatorKey, Operator{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
