package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/stationchief/station-backend/internal/auth"
	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/handler"
	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/metrics"
)

// CORSMiddleware attaches cross-origin headers to every response and
// short-circuits pre-flight requests with an empty 204. A wildcard config
// reflects "*"; an exact config reflects the request origin only when it
// matches.
func CORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allow := allowedOrigin
			if allowedOrigin != "*" && r.Header.Get("Origin") == allowedOrigin {
				allow = r.Header.Get("Origin")
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allow)
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware verifies the init data carried in the Authorization header
// ("tma <init data>") and injects the verified user into the request context.
// Every failure is a distinct 401 code; nothing downstream runs without a
// verified identity.
func AuthMiddleware(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			initData := strings.TrimPrefix(r.Header.Get("Authorization"), AuthScheme+" ")
			if initData == "" || initData == r.Header.Get("Authorization") {
				metrics.AuthFailures.WithLabelValues("missing").Inc()
				respondAuthError(w, handler.CodeMissingInitData)
				return
			}

			user, err := verifier.Verify(initData)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidUser):
					metrics.AuthFailures.WithLabelValues("invalid_user").Inc()
					respondAuthError(w, handler.CodeInvalidUser)
				default:
					metrics.AuthFailures.WithLabelValues("invalid_signature").Inc()
					respondAuthError(w, handler.CodeInvalidInitData)
				}
				log.Warn("Init data rejected", "error", err, "remote_addr", r.RemoteAddr)
				return
			}

			ctx := logger.WithPlayer(r.Context(), user.ID)
			next.ServeHTTP(w, r.WithContext(handler.WithUser(ctx, user)))
		})
	}
}

// RecoveryMiddleware is the catch-all for unexpected failures: a panicking
// handler logs the panic and the client gets a generic 500 without internal
// detail. No request is ever fatal to the process.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("Handler panicked",
					"panic", rec, "method", r.Method, "path", r.URL.Path)
				respondAuthError(w, handler.CodeInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

func respondAuthError(w http.ResponseWriter, code string) {
	status := http.StatusUnauthorized
	if code == handler.CodeInternalError {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + code + `"}` + "\n"))
}
