package rbac

import (
	"net/http"
)

var defaultChecker = NewChecker(nil)

// Can reports whether role holds perm under the default policy.
func Can(role, perm string) bool { return role != "" && defaultChecker.Has(role, perm) }

// Require enforces a single permission.
func Require(perm string) func(http.Handler) http.Handler {
	return guard(func(role string) bool { return defaultChecker.Has(role, perm) })
}

// RequireAny enforces that the role has at least one of the permissions.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	return guard(func(role string) bool { return defaultChecker.Any(role, perms...) })
}

func guard(allowed func(role string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" || !allowed(role) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
