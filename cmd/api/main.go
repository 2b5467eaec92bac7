package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/analyzer"
	"github.com/satya-supercluster/brand-voice-service/internal/cache"
	"github.com/satya-supercluster/brand-voice-service/internal/config"
	"github.com/satya-supercluster/brand-voice-service/internal/db"
	"github.com/satya-supercluster/brand-voice-service/internal/events"
	apihttp "github.com/satya-supercluster/brand-voice-service/internal/http"
	"github.com/satya-supercluster/brand-voice-service/internal/repository"
	"github.com/satya-supercluster/brand-voice-service/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	profileRepo := repository.NewPgBrandProfileRepository(pool)

	analyzerTimeout := time.Duration(cfg.AnalyzerTimeoutSeconds) * time.Second
	var remote analyzer.Analyzer
	if cfg.AnalyzerURL != "" {
		remote = analyzer.NewHTTPClient(cfg.AnalyzerURL, analyzerTimeout, logger)
	}
	voiceAnalyzer := analyzer.NewFallbackAnalyzer(remote, analyzerTimeout, logger)

	profileCache := cache.NewNoopProfileCache()
	publisher := events.NewDisabledPublisher()
	var limiter service.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			profileCache = cache.NewRedisProfileCache(redisClient, time.Duration(cfg.CacheTTLMinutes)*time.Minute, logger)
			publisher = events.NewRedisPublisher(redisClient, cfg.ProfileEventsTopic, cfg.ValidationEventsTopic, logger)
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
		cancel()
	}
	defer publisher.Close()

	brandVoiceSvc := service.NewBrandVoiceService(logger, profileRepo, voiceAnalyzer, profileCache, publisher)
	handler := apihttp.NewBrandVoiceHandler(logger, brandVoiceSvc)
	router := apihttp.NewRouter(logger, limiter, handler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
