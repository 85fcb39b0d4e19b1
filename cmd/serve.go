package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio-api/config"
	routes "portfolio-api/internal/app/http"
	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/domain/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}

		auth := middleware.NewAuth(middleware.AuthConfig{
			Issuer:   config.AuthIssuer(),
			Audience: config.AUTH0_AUDIENCE,
			Secret:   config.JWT_SECRET,
			ClaimNames: access.ClaimNames{
				Roles: config.AUTH0_ROLES_CLAIM,
				Email: config.AUTH0_EMAIL_CLAIM,
			},
			AllowedAdminEmails: config.AUTH0_ALLOWED_ADMIN_EMAILS,
		})
		limiter := middleware.NewRateLimiter(config.RATE_LIMIT_REQUESTS, config.RATE_LIMIT_WINDOW)
		defer limiter.Stop()

		gin.SetMode(config.GIN_MODE)
		r := gin.New()
		r.Use(gin.Logger(), gin.Recovery())
		r.Use(cors.New(corsConfig(config.CORS_ORIGIN)))

		routes.RegisterRoutes(r, routes.Deps{Store: st, Auth: auth, Limiter: limiter})

		srv := &http.Server{
			Addr:         ":" + config.PORT,
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed to start: %w", err)
		case sig := <-quit:
			slog.Info("shutdown signal received", "signal", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		slog.Info("server stopped gracefully")
		return nil
	},
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(origin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	cfg.AllowCredentials = true
	return cfg
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
