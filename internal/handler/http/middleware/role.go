package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hr2-portal/hr2-backend-go/internal/handler/http/response"
)

// Supervisor role as minted by the identity provider.
const roleSupervisor = "supervisor"

// SupervisorOnly requires the supervisor role
func SupervisorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Supervisor access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Supervisor access required")
			return
		}

		if role != roleSupervisor {
			response.Forbidden(w, "Supervisor access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
