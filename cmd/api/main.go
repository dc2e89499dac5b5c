package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"venture_model/pkg/api/analytics"
	"venture_model/pkg/api/calc"
	"venture_model/pkg/api/catalog"
	"venture_model/pkg/api/respond"
	"venture_model/pkg/config"
	"venture_model/pkg/core/params"
	"venture_model/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	cat, err := params.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("failed to load parameter catalog", zap.Error(err))
	}
	cat.Strict = cfg.StrictLookups

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(recoverer(log))

	calcHandler := calc.NewHandler(cat, log)
	analyticsHandler := analytics.NewHandler(cat, log)
	catalogHandler := catalog.NewHandler(cat)

	r.Post("/api/calculate", calcHandler.HandleCalculate)
	r.Post("/api/compare", calcHandler.HandleCompare)
	r.Post("/api/sensitivity", calcHandler.HandleSensitivity)
	r.Post("/api/analytics", analyticsHandler.HandleAnalytics)
	r.Get("/api/breakeven", analyticsHandler.HandleBreakeven)
	r.Get("/api/scenarios", catalogHandler.HandleScenarios)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("API server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown did not finish cleanly", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

// requestLogger tags each request with an id and logs method, path and
// duration.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := uuid.NewString()
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r)
			log.Info("request handled",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// recoverer keeps a handler panic from reaching the client as a raw stack
// trace; the client gets the standard error envelope instead.
func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("handler panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path))
					respond.Fail(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
