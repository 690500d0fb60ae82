package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/auth"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests that carry no valid access token. Refresh
// tokens verify but are not accepted here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
