package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/samandr77/microservices/mro/internal/activity"
	"github.com/samandr77/microservices/mro/internal/api"
	"github.com/samandr77/microservices/mro/internal/api/events"
	"github.com/samandr77/microservices/mro/internal/clients/mailer"
	"github.com/samandr77/microservices/mro/internal/clients/s3store"
	"github.com/samandr77/microservices/mro/internal/clients/weather"
	"github.com/samandr77/microservices/mro/internal/repository"
	"github.com/samandr77/microservices/mro/internal/service"
	"github.com/samandr77/microservices/mro/pkg/broker"
	"github.com/samandr77/microservices/mro/pkg/config"
	"github.com/samandr77/microservices/mro/pkg/job"
	"github.com/samandr77/microservices/mro/pkg/logger"
	"github.com/samandr77/microservices/mro/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 2 * time.Minute

	overdueJobTimeout = 10 * time.Minute
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(cfg.LogLevel)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	storage, err := s3store.New(ctx, cfg.S3)
	panicOnErr("new s3 client", err)

	var weatherCache weather.Cache

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		err = rdb.Ping(ctx).Err()
		panicOnErr("ping redis", err)

		weatherCache = weather.NewRedisCache(rdb)
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	activityLog := activity.NewLogger(repo, cfg.ActivityQueueSize).Run(ctx)

	s := service.New(
		repo,
		storage,
		activityLog,
		producer,
		weather.New(cfg.Weather, weatherCache),
		service.AuthConfig{JWTSecret: cfg.JWTSecret, AccessTokenTTL: cfg.AccessTokenTTL},
	)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(mailer.New(cfg.Mailer))

		consumer.Handle(cfg.Kafka.NotificationsTopic, eventHandler.SendNotification)
		consumer.Consume(ctx)
	}

	jobs := job.NewScheduler().Add(job.Job{
		Name:     "overdue_corrective_actions",
		Interval: cfg.JobOverdueInterval,
		Timeout:  overdueJobTimeout,
		Fn: func(ctx context.Context) error {
			sent, err := s.NotifyOverdueCorrectiveActions(ctx)
			if err != nil {
				return err
			}

			slog.InfoContext(ctx, "overdue reminders sent", "count", sent)

			return nil
		},
	})
	jobs.Start(ctx)

	handler := api.NewHandler(s, cfg.IsProduction())
	mw := api.NewMiddleware(s, cfg.IsProduction())

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
	jobs.Stop()
	activityLog.Stop()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}

	cancel()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
