package middleware

import "net/http"

// ServerID tags every response with the serving instance, useful when
// several replicas sit behind a load balancer.
func ServerID(serverID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Server-ID", serverID)
			next.ServeHTTP(w, r)
		})
	}
}
