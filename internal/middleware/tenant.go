package middleware

import (
	"encoding/json"
	"net/http"
)

// TenantHeader is the employer-identifying header required on every API
// request.
const TenantHeader = "x-tenant"

// RequireTenant rejects requests whose x-tenant header is missing or does
// not match the configured tenant. The check is deliberately a fixed string
// comparison: multi-tenant authorization policy is out of scope.
func RequireTenant(required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(TenantHeader) != required {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":    "Missing or invalid x-tenant header",
					"required": required,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
