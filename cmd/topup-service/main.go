package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jawirlabs/topup-order-service/internal/app/background"
	"github.com/jawirlabs/topup-order-service/internal/app/setup"
	httpdelivery "github.com/jawirlabs/topup-order-service/internal/delivery/http"
	"github.com/jawirlabs/topup-order-service/internal/delivery/http/handlers"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	cfg := deps.Config

	if cfg.TopupDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.TopupDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	router := httpdelivery.NewRouter(httpdelivery.Handlers{
		Transaction: handlers.NewTransactionHandler(useCases.TrxUsecase, cfg.Provider.WebhookSecret),
		Auth:        handlers.NewAuthHandler(useCases.AuthUsecase),
		Catalog:     handlers.NewCatalogHandler(useCases.CatalogUsecase, deps.Repositories.UserRepo),
		WS:          handlers.NewWSHandler(useCases.StatusPub),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(useCases.TrxUsecase, useCases.Monitor, deps.Subscriber)
	tasks.StartAll(ctx)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("topup order service listening", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
}
