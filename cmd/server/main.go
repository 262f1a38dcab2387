package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/preciosa-app/backend/internal/auth"
	"github.com/preciosa-app/backend/internal/handler"
	"github.com/preciosa-app/backend/internal/middleware"
	"github.com/preciosa-app/backend/internal/observability/metrics"
	"github.com/preciosa-app/backend/internal/service"
	"github.com/preciosa-app/backend/internal/storage"
	"github.com/preciosa-app/backend/internal/storage/postgres"
	"github.com/preciosa-app/backend/internal/storage/sqlite"
	"github.com/preciosa-app/backend/pkg/config"
	"github.com/preciosa-app/backend/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.Logging.Level))

	// The local store always opens: it backs the user registry even when
	// history lands on the remote backend.
	local, err := sqlite.New(cfg.Storage.SQLitePath)
	if err != nil {
		slog.Error("Failed to initialize local storage", "error", err)
		os.Exit(1)
	}
	defer local.Close()

	store, backend := resolveStore(context.Background(), cfg, local)
	if backend == storage.BackendPostgres {
		defer store.Close()
	}
	slog.Info("Storage resolved", "backend", backend)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration())
	authenticator := auth.NewPasswordAuthenticator(local)

	authSvc := service.NewAuthService(authenticator, jwtManager, local, slog.Default())
	simSvc := service.NewSimulationService(store, backend, cfg.History.SurfaceReadErrors)

	authHandler := handler.NewAuthHandler(authSvc, slog.Default())
	simHandler := handler.NewSimulationHandler(simSvc, slog.Default())

	requireAuth := middleware.RequireAuth(jwtManager)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/pricing", requireAuth(http.HandlerFunc(simHandler.Pricing)))
	mux.Handle("POST /api/v1/salary", requireAuth(http.HandlerFunc(simHandler.Salary)))
	mux.Handle("POST /api/v1/simulations", requireAuth(http.HandlerFunc(simHandler.Save)))
	mux.Handle("GET /api/v1/simulations", requireAuth(http.HandlerFunc(simHandler.List)))
	mux.Handle("DELETE /api/v1/simulations/{id}", requireAuth(http.HandlerFunc(simHandler.Delete)))
	mux.Handle("DELETE /api/v1/simulations", requireAuth(http.HandlerFunc(simHandler.Clear)))
	mux.Handle("GET /healthz", handler.NewHealthHandler(backend))
	mux.Handle("GET /metrics", promhttp.Handler())

	// Logging and metrics wrap everything; h2c enables HTTP/2 without TLS.
	root := middleware.Logging(metrics.HTTPMiddleware(mux))
	h2cHandler := h2c.NewHandler(root, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// resolveStore decides the history backend once, at startup, and freezes the
// choice for the process lifetime. The remote store wins when it is
// configured and answers the reachability probe within the deadline;
// otherwise history falls back to the local store. No mid-session failover:
// a session's records always land on a single backend.
func resolveStore(ctx context.Context, cfg *config.Configuration, local *sqlite.LocalStore) (storage.Store, storage.Backend) {
	if cfg.Storage.PostgresURL == "" {
		slog.Info("Remote backend not configured, using local storage")
		return local, storage.BackendSQLite
	}

	probeCtx, cancel := context.WithTimeout(ctx, cfg.Storage.ProbeTimeout())
	defer cancel()

	remote, err := postgres.New(probeCtx, cfg.Storage.PostgresURL)
	if err != nil {
		slog.Warn("Remote backend unreachable, falling back to local storage", "error", err)
		return local, storage.BackendSQLite
	}
	return remote, storage.BackendPostgres
}
