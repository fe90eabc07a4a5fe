package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/utils/response"
)

const adminPrefix = "/api/v1/admin/"

var adminHostPaths = []string{
	adminPrefix,
	"/api/v1/users/login",
	"/health",
	"/metrics",
	"/swagger/",
}

// HostGuard splits the storefront and the back-office by host name. Requests
// on adminHost may only reach the admin API and infra endpoints, and the admin
// API is hidden on every other host. An empty adminHost disables the guard.
func HostGuard(adminHost string) func(http.Handler) http.Handler {
	adminHost = strings.ToLower(strings.TrimSpace(adminHost))

	return func(next http.Handler) http.Handler {
		if adminHost == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := hostname(r.Host)
			onAdminHost := host == adminHost
			isAdminPath := r.URL.Path == strings.TrimSuffix(adminPrefix, "/") || strings.HasPrefix(r.URL.Path, adminPrefix)

			if onAdminHost && !allowedOnAdminHost(r.URL.Path) || !onAdminHost && isAdminPath {
				LoggerFromContext(r.Context()).Warn("Request blocked by host guard", slog.String("host", host))
				response.Error(w, errors.NotFoundError("Resource not found"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hostname(hostport string) string {
	host := hostport

	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}

	return strings.ToLower(strings.TrimSuffix(host, "."))
}

func allowedOnAdminHost(path string) bool {
	for _, p := range adminHostPaths {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) || path == strings.TrimSuffix(p, "/") {
				return true
			}

			continue
		}

		if path == p {
			return true
		}
	}

	return false
}
