package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"licenza/internal/infrastructure/cache"
	"licenza/internal/infrastructure/config"
	"licenza/internal/infrastructure/database"
	"licenza/internal/infrastructure/migration"
	"licenza/internal/infrastructure/repository"
	"licenza/internal/infrastructure/scheduler"
	httpRouter "licenza/internal/interfaces/http"
	"licenza/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Licenza HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	settingsRepo := repository.NewAlertSettingsRepository(database.Get(), log)
	if err := settingsRepo.EnsureDefault(cmd.Context()); err != nil {
		return fmt.Errorf("failed to seed alert settings: %w", err)
	}

	var statsCache *cache.StatsCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
			log.Warnw("redis unreachable, stats caching disabled", "error", err)
		} else {
			statsCache = cache.NewStatsCache(redisClient, 5*time.Minute)
			defer redisClient.Close()
		}
	}

	router := httpRouter.NewRouter(database.Get(), statsCache, cfg, log)
	router.SetupRoutes()

	if cfg.Alerts.ScheduleEnabled {
		alertScheduler, err := scheduler.NewAlertScheduler(cfg.Alerts.ScheduleCron, router.AlertService(), log)
		if err != nil {
			return fmt.Errorf("failed to create alert scheduler: %w", err)
		}
		alertScheduler.Start()
		defer func() {
			if err := alertScheduler.Stop(); err != nil {
				log.Errorw("failed to stop alert scheduler", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
