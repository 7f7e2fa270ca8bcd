package middleware

import (
	"net/http"

	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/pkg/response"
)

// RequireUserType checks that the authenticated account is one of the allowed
// kinds. The kind is read from context, set by AuthMiddleware from the JWT
// claims.
func RequireUserType(allowedTypes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type information not found")
				return
			}

			allowed := false
			for _, allowedType := range allowedTypes {
				if userType == allowedType {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeAdmin)(next)
}

// RequireProfessional is a convenience middleware for professional-only endpoints
func RequireProfessional(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeProfessional)(next)
}

// RequireCustomer is a convenience middleware for customer-only endpoints
func RequireCustomer(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeCustomer)(next)
}

// RequireAdminOrProfessional is a convenience middleware for admin or professional endpoints
func RequireAdminOrProfessional(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeAdmin, entity.UserTypeProfessional)(next)
}
