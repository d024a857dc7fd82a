package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-jobboard/config"
	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/internal/container"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/storage"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
	"github.com/oksasatya/go-jobboard/internal/router"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
	"github.com/oksasatya/go-jobboard/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	snapshots, closeRepo, err := storage.OpenSnapshots(ctx, cfg, logger, storage.Options{Migrate: true})
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeRepo()

	// JWT
	jwtManager := helpers.NewJWTManager(cfg.JWTSecret)

	opts := []application.Option{application.WithPasswordHashing(cfg.PasswordHashing)}

	// RabbitMQ notifications (optional)
	if cfg.MailSendEnabled && cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; notifications disabled")
		} else {
			defer pub.Close()
			opts = append(opts, application.WithPublisher(pub))
		}
	}

	// Elasticsearch user search (optional)
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err == nil {
			err = helpers.EnsureUsersIndex(ctx, es, cfg.ESUsersIndex)
		}
		if err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable; using in-memory search")
		} else {
			opts = append(opts, application.WithSearch(es, cfg.ESUsersIndex))
		}
	}

	store, err := application.Open(ctx, snapshots, jwtManager, logger, opts...)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	// Redis rate limiting (optional)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			logger.WithError(err).Warn("redis ping failed; rate limits fail open")
		}
		defer func() { _ = rdb.Close() }()
	}

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetStore(store)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(middleware.BodyLimit(cfg.BodyLimitBytes()))
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))
	if cfg.Env == "development" || cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r, cfg.APIBasePath)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("backend is now listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
