// main wires the substrate, the domain services, and the HTTP surface,
// then runs the server and the event worker until interrupted. Business
// logic lives in the internal packages.
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

	"golang.org/x/sync/errgroup"

	"lifebank/internal/auth"
	"lifebank/internal/directory"
	directoryhandler "lifebank/internal/directory/handler"
	"lifebank/internal/events"
	"lifebank/internal/inventory"
	inventoryhandler "lifebank/internal/inventory/handler"
	"lifebank/internal/platform/config"
	"lifebank/internal/platform/httpserver"
	"lifebank/internal/platform/logger"
	"lifebank/internal/platform/metrics"
	platformredis "lifebank/internal/platform/redis"
	"lifebank/internal/requests"
	requestshandler "lifebank/internal/requests/handler"
	"lifebank/internal/storage"
	httptransport "lifebank/internal/transport/http"
	dErrors "lifebank/pkg/domain-errors"
	"lifebank/pkg/requestcontext"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Substrate: Redis when configured, in-memory otherwise.
	var kv storage.KV = storage.NewInMemoryKV()
	var healthChecks []func() error
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		kv = storage.NewRedisKV(redisClient.Client)
		healthChecks = append(healthChecks, func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(pingCtx)
		})
		log.Info("using redis substrate")
	} else {
		log.Info("using in-memory substrate")
	}

	// Event pipeline: slow sinks sit behind one async worker so domain
	// operations never block on brokers or databases.
	var downstream []events.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := events.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		defer kafkaSink.Close()
		downstream = append(downstream, kafkaSink)
		log.Info("kafka event sink enabled", "topic", cfg.KafkaTopic)
	}
	if cfg.EventsDSN != "" {
		pgSink, err := events.NewPostgresSink(ctx, cfg.EventsDSN)
		if err != nil {
			return err
		}
		defer pgSink.Close()
		downstream = append(downstream, pgSink)
		log.Info("postgres event log enabled")
	}

	group, ctx := errgroup.WithContext(ctx)

	var sinks []events.Sink
	for _, sink := range downstream {
		async := events.NewAsyncSink(0)
		worker := events.NewWorker(sink, async.Inbox())
		group.Go(func() error {
			if err := worker.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
		sinks = append(sinks, async)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, events.NewInMemorySink())
	}
	publisher := events.NewPublisher(log, sinks...)

	tokens := auth.NewTokenService(cfg.JWTSigningKey, time.Hour)

	directoryService := directory.NewService(directory.NewKVStore(kv), log)
	if cfg.Admin != "" {
		bootCtx := requestcontext.WithCallerID(ctx, cfg.Admin)
		err := directoryService.Initialize(bootCtx, cfg.Admin)
		if err != nil && !dErrors.IsCode(err, dErrors.CodeAlreadyInitialized) {
			return err
		}
	}

	inventoryService := inventory.NewService(inventory.NewKVStore(kv), directoryService, publisher, m, log)
	requestsService := requests.NewService(requests.NewKVStore(kv), directoryService, publisher, m, log)

	router := httptransport.NewRouter(
		httptransport.Healthz(healthChecks...),
		directoryhandler.New(directoryService, log, m, tokens),
		inventoryhandler.New(inventoryService, log, m, tokens),
		requestshandler.New(requestsService, log, m, tokens),
	)
	srv := httpserver.New(cfg.Addr, router)

	group.Go(func() error {
		log.Info("starting lifebank", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
