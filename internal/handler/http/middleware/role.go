package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the Admin or SuperAdmin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAdmin && role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin requires the SuperAdmin role.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSuperAdminOnly)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrSuperAdminOnly)
			return
		}

		if user.Role(roleStr) != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrSuperAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
