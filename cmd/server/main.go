package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	delivery_http "inkwell-blog-service/internal/delivery/http"
	auth_http "inkwell-blog-service/internal/delivery/http/auth"
	post_http "inkwell-blog-service/internal/delivery/http/post"
	metrics_server "inkwell-blog-service/internal/delivery/metrics"
	"inkwell-blog-service/internal/infrastructure/config"
	"inkwell-blog-service/internal/logger"
	prometheus_metrics "inkwell-blog-service/internal/metrics/prometheus"
	post_postgres "inkwell-blog-service/internal/repository/post/postgres"
	session_postgres "inkwell-blog-service/internal/repository/session/postgres"
	user_postgres "inkwell-blog-service/internal/repository/user/postgres"
	auth_service "inkwell-blog-service/internal/service/auth"
	post_service "inkwell-blog-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewMetricsProvider()
	metrics.SetServiceHealth(true)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	sessionRepo := session_postgres.NewSessionRepository(pool, log, metrics)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	postService := post_service.NewPostService(postRepo, userRepo, log, metrics, nil)
	authService := auth_service.NewAuthService(userRepo, sessionRepo, log, metrics, sessionTTL, nil)

	postAPI := post_http.NewPostAPI(postService, log)
	authAPI := auth_http.NewAuthAPI(authService, cfg.Session.CookieName, sessionTTL, log)

	router := delivery_http.NewRouter(delivery_http.RouterConfig{
		Env:           cfg.Env,
		TemplatesGlob: cfg.Templates.Path,
		CookieName:    cfg.Session.CookieName,
	}, postAPI, authAPI, authService, metrics, log)

	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(cfg *config.Config, log *logger.Logger) error {
	migrationsDSN := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, migrationsDSN)
	if err != nil {
		return err
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Warn("Failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Warn("Failed to close migration database", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations are up to date")
			return nil
		}
		return err
	}

	log.Info("Migrations applied")
	return nil
}
