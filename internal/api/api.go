// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/matt-dz/formcheck/docs"
	apiError "github.com/matt-dz/formcheck/internal/api/error"
	"github.com/matt-dz/formcheck/internal/api/middleware"
	"github.com/matt-dz/formcheck/internal/api/requestid"
	"github.com/matt-dz/formcheck/internal/api/routes/fields"
	"github.com/matt-dz/formcheck/internal/api/routes/ping"
	"github.com/matt-dz/formcheck/internal/api/routes/register"
	"github.com/matt-dz/formcheck/internal/env"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func addDocs(r chi.Router) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		swagger.ServeHTTP(w, req)
	}))
}

func addRoutes(router chi.Router) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		r.Post("/fields/{field}/validate", fields.HandleValidateField)
		r.Post("/password/strength", fields.HandlePasswordStrength)
		r.Post("/register", register.HandleRegister)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.NotFound, "route not found", requestid.ExtractRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed",
			requestid.ExtractRequestID(r.Context()))
	})
}

// NewRouter builds the API handler for env.
func NewRouter(env *env.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)

	addRoutes(router)
	addDocs(router)
	return router
}

// Start godoc
//
//	@title			formcheck API
//	@version		1.0
//	@description	Live validation for the registration form.
//
//	@host			localhost:8080
//	@BasePath		/
func Start(ctx context.Context, env *env.Env) error {
	conf := env.Config.Server
	server := &http.Server{
		Addr:              conf.Addr(),
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at %s", conf.Addr()))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at %s/api/swagger/index.html", env.Config.HostOrigin))
		if conf.TLS.Enabled() {
			errCh <- server.ListenAndServeTLS(conf.TLS.Cert, conf.TLS.Key)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	env.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
