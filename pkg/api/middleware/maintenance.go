package middleware

import "net/http"

const maintenancePage = "/maintenance.html"

// Maintenance redirects every request to the static maintenance page while
// the flag is on. Redirect-only; it never serves the page itself.
func Maintenance(enabled bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if enabled && r.URL.Path != maintenancePage {
			http.Redirect(w, r, maintenancePage, http.StatusTemporaryRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}
