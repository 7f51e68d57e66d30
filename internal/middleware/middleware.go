package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

type contextKey string

const emailContextKey contextKey = "email"

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
		reqID, err := ksuid.NewRandom()
		if err == nil {
			logger = logger.With().Str("request_id", reqID.String()).Logger()
		}
		logger.Info().
			Str("Host", r.Host).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Str("x-forwarded-for", r.Header.Get("x-forwarded-for")).
			Msg("req")
		next.ServeHTTP(w, r)
	})
}

func HeadersMiddleware(next http.Handler, env string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env != "dev" {
			w.Header().Set("X-Frame-Options", "deny")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			w.Header().Set("Referrer-Policy", "origin")
		}
		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware allows credentialed requests from the configured origins
// only. Preflights are answered here and never reach the router.
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range allowedOrigins {
			if strings.EqualFold(origin, allowed) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
				break
			}
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type TokenVerifier interface {
	Verify(tok string) (string, error)
}

// TokenAuthenticatedMiddleware wraps handlers that require a verified
// identity. The decoded email ends up in the request context, nothing else
// is touched.
func TokenAuthenticatedMiddleware(verifier TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil {
			unauthorised(w)
			return
		}
		email, err := verifier.Verify(cookie.Value)
		if err != nil {
			unauthorised(w)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), emailContextKey, email)))
	})
}

// EmailFromContext returns the identity attached by the auth gate.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}

func unauthorised(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized access"})
}
