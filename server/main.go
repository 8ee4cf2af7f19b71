package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biletsfera/api/routes"
	"biletsfera/internal/notifications"
	"biletsfera/internal/shared/config"
	"biletsfera/internal/shared/database"
	"biletsfera/pkg/logger"
	"biletsfera/pkg/metrics"
	"biletsfera/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// container environments carry their own variables, so a missing .env is fine
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	appLogger := logger.New()
	logger.SetDefault(appLogger)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect to databases", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		appLogger.Error("auto-migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := database.MigrateConstraints(db.GetPostgreSQL()); err != nil {
		appLogger.Error("constraint migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), &ratelimit.Config{
			Enabled:          cfg.RateLimit.Enabled,
			WindowDuration:   cfg.RateLimit.WindowDuration,
			DefaultRequests:  cfg.RateLimit.DefaultRequests,
			PublicRequests:   cfg.RateLimit.PublicRequests,
			AuthRequests:     cfg.RateLimit.AuthRequests,
			CheckoutRequests: cfg.RateLimit.CheckoutRequests,
			StatsRequests:    cfg.RateLimit.StatsRequests,
			WhitelistedIPs:   cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	}

	saleProducer := notifications.NewNoopSaleProducer()
	if cfg.Kafka.Enabled {
		kafkaProducer, err := notifications.NewKafkaSaleProducer(&notifications.KafkaProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			SaleTopic:    cfg.Kafka.SaleTopic,
			RetryMax:     3,
			Timeout:      10 * time.Second,
			RequiredAcks: notifications.DefaultKafkaProducerConfig().RequiredAcks,
		}, appLogger)
		if err != nil {
			appLogger.Error("failed to create sale producer, sales will not be published", slog.Any("error", err))
		} else {
			saleProducer = kafkaProducer
			defer saleProducer.Close()
		}

		consumerCtx, consumerCancel := context.WithCancel(context.Background())
		defer consumerCancel()
		saleConsumer, err := notifications.NewSaleConsumer(cfg.Kafka.Brokers,
			cfg.Kafka.ConsumerGroup, cfg.Kafka.SaleTopic, appLogger, nil)
		if err != nil {
			appLogger.Error("failed to create sale consumer, continuing without it", slog.Any("error", err))
		} else {
			defer saleConsumer.Close()
			go func() {
				if err := saleConsumer.Run(consumerCtx); err != nil {
					appLogger.Error("sale consumer stopped", slog.Any("error", err))
				}
			}()
		}
	}

	router := setupRouter(cfg, db, appLogger, rateLimiter, saleProducer)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.Bool("redis_cache", db.Redis != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, appLogger *logger.Logger,
	rateLimiter *ratelimit.RateLimiter, saleProducer notifications.SaleProducer) *gin.Engine {

	engine := gin.New()
	engine.Use(requestLoggerMiddleware(appLogger), gin.Recovery())
	engine.Use(metrics.Middleware())

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter := routes.NewRouter(cfg, db, appLogger, saleProducer)
	appRouter.SetupRoutes(engine)

	return engine
}

func requestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogHTTPRequest(c, time.Since(start))
	}
}
