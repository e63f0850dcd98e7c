package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventboard/config"
	"eventboard/internal/adapters/auth"
	"eventboard/internal/adapters/revalidate"
	deliveryhttp "eventboard/internal/delivery/http"
	"eventboard/internal/domain"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"

	_ "eventboard/docs"

	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title           Eventboard API
// @version         1.0
// @description     Event listings with organizers, categories and page revalidation.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db := postgres.NewManager(cfg.DatabaseURL,
		postgres.WithConnectTimeout(cfg.DBConnectTimeout),
		postgres.WithLogger(logger),
	)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()

	sink, closeSink, err := newPageInvalidator(cfg.Revalidate, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSink(); err != nil {
			logger.Error("failed to close revalidation sink", "err", err)
		}
	}()
	hook := revalidate.NewHook(cfg.Revalidate.Driver, sink, cfg.Revalidate.Timeout, logger)

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:             logger,
		Events:             services.NewEventService(eventRepo, userRepo, categoryRepo, hook, logger, cfg.RequestTimeout),
		Categories:         services.NewCategoryService(categoryRepo, logger, cfg.RequestTimeout),
		Users:              services.NewUserService(userRepo, logger, cfg.RequestTimeout),
		TokenVerifier:      auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		UserWebhookSecret:  cfg.UserWebhookSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment, "revalidate_driver", cfg.Revalidate.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Let in-flight revalidations finish before the sink is closed.
	return hook.Close(shutdownCtx)
}

// newPageInvalidator builds the sink named by cfg.Driver and a func that
// releases its resources.
func newPageInvalidator(cfg config.RevalidateConfig, logger *slog.Logger) (domain.PageInvalidator, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case config.DriverWebhook:
		client := &http.Client{Timeout: cfg.Timeout}
		return revalidate.NewWebhookSink(cfg.WebhookURL, cfg.WebhookSecret, client), noop, nil
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return revalidate.NewRedisSink(client, cfg.RedisChannel), client.Close, nil
	case config.DriverAMQP:
		sink, closeFn, err := revalidate.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		return sink, closeFn, nil
	default:
		return revalidate.NewLogSink(logger), noop, nil
	}
}
