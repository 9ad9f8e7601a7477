package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spock-lang/spock/internal/audit"
	"github.com/spock-lang/spock/internal/cli/config"
	"github.com/spock-lang/spock/internal/cli/ui"
	"github.com/spock-lang/spock/internal/collabauth"
	"github.com/spock-lang/spock/internal/ratelimit"
	"github.com/spock-lang/spock/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the evaluate/stream HTTP collaborator server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	var store *audit.Store
	if spinErr := ui.WithSpinner(os.Stdout, "Opening audit store ("+cfg.Audit.Driver+")", false, func() error {
		var openErr error
		store, openErr = audit.Open(cfg.Audit.Driver, cfg.Audit.DSN)
		return openErr
	}); spinErr != nil {
		return fmt.Errorf("opening audit store: %w", spinErr)
	}
	defer store.Close()

	var limiter *ratelimit.RedisLimiter
	if spinErr := ui.WithSpinner(os.Stdout, "Connecting to rate limiter ("+cfg.RateLimit.RedisAddr+")", false, func() error {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		built, buildErr := ratelimit.NewRedisLimiter(ratelimit.Config{
			Client: redisClient,
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
			Prefix: "spock:ratelimit:",
		})
		limiter = built
		return buildErr
	}); spinErr != nil {
		return fmt.Errorf("building rate limiter: %w", spinErr)
	}

	issuer := collabauth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	summary := ui.NewKeyValueTable(os.Stdout, false)
	summary.AddRow("Listen", cfg.Server.Addr())
	summary.AddRow("Audit driver", cfg.Audit.Driver)
	summary.AddRow("Rate limit backend", cfg.RateLimit.RedisAddr)
	summary.Render()

	srv := server.New(server.Deps{
		Issuer:  issuer,
		Limiter: limiter,
		Audit:   store,
		Logger:  logger,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting spockd", zap.String("addr", cfg.Server.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx, cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", zap.Duration("grace", 5*time.Second))
		return <-errCh
	}
}
