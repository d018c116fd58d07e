// Package middleware contains middleware functions for the API
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/matt-dz/formcheck/internal/api/requestid"
	"github.com/matt-dz/formcheck/internal/config"
	"github.com/matt-dz/formcheck/internal/env"
	"github.com/matt-dz/formcheck/internal/log"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

// LogRequest logs one line per request. Successful pings are skipped.
func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Level:         slog.LevelInfo,
		RecoverPanics: true,
		Skip: func(r *http.Request, respStatus int) bool {
			return r.URL.Path == "/api/ping" && respStatus < http.StatusBadRequest
		},
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("request_id", id)}
			}
			return []slog.Attr{slog.String("request_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context and the response
// headers.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestid.New()
		ctx := log.AppendCtx(r.Context(), slog.String("request_id", id))
		ctx = requestid.InjectRequestID(ctx, id)
		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AddCors adds the CORS headers the registration page needs. In production
// only the configured host origin is allowed; in development any origin is
// echoed back.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		hostOrigin := e.Config.HostOrigin

		var allowedOrigin string
		if e.Config.Env == config.EnvProd {
			allowedOrigin = hostOrigin
		} else if origin != "" {
			allowedOrigin = origin
		}

		if allowedOrigin == "" {
			allowedOrigin = hostOrigin
		}

		if allowedOrigin == "" {
			e.Logger.WarnContext(r.Context(),
				"HOST_ORIGIN not set and no origin sent; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
