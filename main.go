package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deal-calculator/config"
	httpLayer "deal-calculator/http"
	"deal-calculator/metrics"
	"deal-calculator/repository"
	"deal-calculator/service"
)

func main() {
	cfg, err := config.Load(os.Getenv("DEAL_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics.Init()

	dealRepo := repository.NewDealRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	dealService := service.NewDealService(dealRepo)
	dealHandler := httpLayer.NewDealHandler(dealService)

	houseHackService := service.NewHouseHackService()
	houseHackHandler := httpLayer.NewHouseHackHandler(houseHackService)

	reportHandler := httpLayer.NewReportHandler()

	configService := service.NewConfigService(cache)
	configHandler := httpLayer.NewConfigHandler(configService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/deal/analyze",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(dealHandler.AnalyzeDeal),
		),
	)

	mux.Handle(
		"/deal/house-hack",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(houseHackHandler.AnalyzeHouseHack),
		),
	)

	mux.Handle(
		"/deal/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reportHandler.ExportReport),
		),
	)

	mux.Handle(
		"/deal/config",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(configHandler.HandleConfiguration),
		),
	)

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("deal calculator listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
