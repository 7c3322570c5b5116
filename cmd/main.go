package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/farelens/flight-offers-service/internal/app/config"
	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/app/endpoints"
	"github.com/farelens/flight-offers-service/internal/app/service"
	"github.com/farelens/flight-offers-service/internal/app/transport"
	"github.com/farelens/flight-offers-service/internal/pkg/amadeus"
	"github.com/farelens/flight-offers-service/internal/pkg/flight"
	"github.com/farelens/flight-offers-service/internal/pkg/logger"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Offers Service API
// @version         0.0.1
// @description     flight-offers-service
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// provider client with outbound rate limiting
	amadeusClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		APIKey:       cfg.Amadeus.APIKey,
		APISecret:    cfg.Amadeus.APISecret,
		Timeout:      cfg.Amadeus.Timeout,
		RateLimitRPS: cfg.Amadeus.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	})

	// cache
	searchCache := flight.NewSearchCache(redisClient)

	// service
	flightService := service.NewFlightService(amadeusClient, searchCache,
		cfg.Search.CacheExpiration, cfg.Search.LockTimeout)

	return endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(flightService),
	}
}
