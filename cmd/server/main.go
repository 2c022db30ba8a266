package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/quickledger/internal/adapter/clock"
	httpAdapter "github.com/iho/quickledger/internal/adapter/http"
	"github.com/iho/quickledger/internal/adapter/http/handler"
	"github.com/iho/quickledger/internal/adapter/http/middleware"
	"github.com/iho/quickledger/internal/adapter/idgen"
	"github.com/iho/quickledger/internal/infrastructure/catalog"
	"github.com/iho/quickledger/internal/infrastructure/config"
	"github.com/iho/quickledger/internal/infrastructure/logger"
	"github.com/iho/quickledger/internal/infrastructure/metrics"
	"github.com/iho/quickledger/internal/parser"
	"github.com/iho/quickledger/internal/usecase"
)

const limiterIdleTTL = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Caller: cfg.LogCaller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

// run serves HTTP until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	router, limiter, err := buildRouter(cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	if limiter != nil {
		go sweepLimiters(ctx, limiter, log)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// buildParser configures the parser from the expense table file and default payer.
func buildParser(cfg *config.Config, log zerolog.Logger) (*parser.Parser, error) {
	opts := []parser.Option{parser.WithDefaultPayer(cfg.DefaultPayer)}

	if cfg.ExpenseTablePath != "" {
		table, err := catalog.LoadExpenseTable(cfg.ExpenseTablePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithExpenseTable(table))

		log.Info().
			Str("path", cfg.ExpenseTablePath).
			Int("mappings", len(table.Mappings())).
			Msg("loaded expense table")
	}

	return parser.New(opts...), nil
}

// buildRouter wires the parse use case into the HTTP router. The returned
// limiter is nil when rate limiting is disabled.
func buildRouter(cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer) (http.Handler, *middleware.RateLimiter, error) {
	p, err := buildParser(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	parseUC := usecase.NewParseUseCase(
		p,
		clock.System{},
		idgen.NewULIDGenerator(),
		metrics.New(reg),
		logger.Component(log, "parser"),
		cfg.MaxBatchSize,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(parseUC),
		HealthHandler:      handler.NewHealthHandler(parseUC),
		Logger:             log,
		RateLimiter:        limiter,
	})

	return router, limiter, nil
}

func sweepLimiters(ctx context.Context, limiter *middleware.RateLimiter, log zerolog.Logger) {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.Cleanup(limiterIdleTTL); removed > 0 {
				log.Debug().Int("removed", removed).Msg("dropped idle rate limiters")
			}
		}
	}
}
