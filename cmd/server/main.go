package main

import (
	"context"                           // Context for startup checks
	"planetary_api/internal/api"        // Custom package for API handlers
	"planetary_api/internal/config"     // Custom package for configuration
	"planetary_api/internal/mail"       // Notification gateway
	"planetary_api/internal/middleware" // Custom package for middleware
	"planetary_api/internal/store"      // Data access layer
	"planetary_api/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"                                  // Gin web framework
	"github.com/prometheus/client_golang/prometheus"            // Prometheus registry
	"github.com/prometheus/client_golang/prometheus/collectors" // Runtime collectors
	"github.com/prometheus/client_golang/prometheus/promhttp"   // Prometheus exposition handler
	"github.com/redis/go-redis/v9"                              // Redis client
	"github.com/sirupsen/logrus"                                // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig(ctx) // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Connect to the database selected by DB_DRIVER
	db, err := store.Open(cfg.DB.Driver, cfg.DB.ConnString())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup the optional Redis planet cache
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,     // Redis server address
			Password: cfg.Redis.Password, // Redis password
			DB:       cfg.Redis.DB,       // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		logrus.WithField("addr", cfg.Redis.Addr).Info("Planet cache enabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := store.New(db)
	r := api.NewRouter(api.Dependencies{
		Users:          s,
		Planets:        s,
		Cache:          utils.NewCache(redisClient, cfg.Redis.TTL),
		Mailer:         mail.NewSMTPSender(cfg.Mail),
		Metrics:        middleware.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		JWTSecret:      cfg.JWT.Secret,
		TokenTTL:       cfg.JWT.TTL,
		Logger:         logrus.StandardLogger(),
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
