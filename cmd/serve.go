package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"charity-connect.com/charity-connect/internal/auth"
	config "charity-connect.com/charity-connect/internal/configs"
	httpapi "charity-connect.com/charity-connect/internal/http"
	repository "charity-connect.com/charity-connect/internal/repositories"
	"charity-connect.com/charity-connect/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the charity task coordination HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg)
		defer redisClient.Close()

		roles := auth.NewRedisRoleCache(
			redisClient,
			auth.NewDirectory(database),
			time.Duration(cfg.RoleCacheTTLSeconds)*time.Second,
		)
		tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

		userRepo := repository.NewUserRepository(database)
		profileRepo := repository.NewProfileRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		handler := httpapi.NewHandler(
			services.NewAccountService(userRepo, tokens),
			services.NewProfileService(profileRepo, roles),
			services.NewTaskService(taskRepo),
			services.NewWorkflowService(taskRepo),
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(e, handler, tokens, roles, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
