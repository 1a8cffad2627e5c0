package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// requireAdminKey guards the cache and stats endpoints with the configured
// admin key. Rejections are logged with the request id so failed probes show
// up next to the request they belong to.
func (s *Server) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			s.log.Warn("admin request rejected",
				"path", r.URL.Path,
				"reason", "missing bearer token",
				"request_id", middleware.GetReqID(r.Context()),
			)
			jsonError(w, "admin key required", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminAPIKey)) != 1 {
			s.log.Warn("admin request rejected",
				"path", r.URL.Path,
				"reason", "bad key",
				"request_id", middleware.GetReqID(r.Context()),
			)
			jsonError(w, "invalid admin key", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests emits one structured line per request, tagged with the chi
// request id and the preset being viewed when there is one.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		}
		if preset := r.URL.Query().Get("preset"); preset != "" {
			attrs = append(attrs, "preset", preset)
		}
		s.log.Info("request", attrs...)
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
