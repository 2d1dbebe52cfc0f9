package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mbellamine/comptoir/pkg/events"
	"github.com/mbellamine/comptoir/pkg/idempotency"
	"github.com/mbellamine/comptoir/pkg/logging"
	"github.com/mbellamine/comptoir/pkg/shutdown"
	"github.com/mbellamine/comptoir/pkg/tracing"

	catalogapp "github.com/mbellamine/comptoir/internal/catalog/application"
	cataloghttp "github.com/mbellamine/comptoir/internal/catalog/infrastructure/http"
	catalogmem "github.com/mbellamine/comptoir/internal/catalog/infrastructure/memory"
	clientapp "github.com/mbellamine/comptoir/internal/client/application"
	clienthttp "github.com/mbellamine/comptoir/internal/client/infrastructure/http"
	clientmem "github.com/mbellamine/comptoir/internal/client/infrastructure/memory"
	orderapp "github.com/mbellamine/comptoir/internal/order/application"
	orderhttp "github.com/mbellamine/comptoir/internal/order/infrastructure/http"
	orderkafka "github.com/mbellamine/comptoir/internal/order/infrastructure/kafka"
	ordermem "github.com/mbellamine/comptoir/internal/order/infrastructure/memory"
	stockapp "github.com/mbellamine/comptoir/internal/stock/application"
	stockevents "github.com/mbellamine/comptoir/internal/stock/infrastructure/events"
)

func main() {
	_ = godotenv.Load()
	log := logging.New()

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	httpAddr := env("HTTP_ADDR", ":8080")
	kafkaAddr := os.Getenv("KAFKA_ADDR")
	redisAddr := os.Getenv("REDIS_ADDR")
	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")
	eventsTopic := env("EVENTS_TOPIC", "comptoir.events")

	if otlpEndpoint != "" {
		tp, err := tracing.Init(ctx, "comptoir", otlpEndpoint, log)
		if err != nil {
			log.Error("otel init failed", "err", err)
			os.Exit(1)
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// In-memory stores; nothing survives a restart.
	productRepo := catalogmem.NewProductRepository()
	clientRepo := clientmem.NewClientRepository()
	orderRepo := ordermem.NewOrderRepository()

	// Services, composed explicitly: the dependency graph is static.
	catalogSvc := catalogapp.NewService(log, productRepo)
	clientSvc := clientapp.NewService(log, clientRepo)
	stockSvc := stockapp.NewService(log, productRepo)
	stockSvc.AddObserver(stockapp.NewAlertObserver(log))

	// Event stream toward Kafka, if a broker is configured.
	var publisher orderapp.EventPublisher = orderapp.NopPublisher{}
	if kafkaAddr != "" {
		writer := orderkafka.NewWriter([]string{kafkaAddr})
		defer writer.Close()

		journal := events.NewJournal()
		dispatch := events.NewDispatcher(log, writer, eventsTopic)
		relay := events.NewRelay(log, journal, dispatch)
		go func() {
			if err := relay.Run(ctx); err != nil {
				log.Error("relay stopped with error", "err", err)
			}
		}()

		journalPub := events.NewJournalPublisher(journal)
		stockSvc.AddObserver(stockevents.NewObserver(journalPub))
		publisher = journalPub
	}

	orderSvc := orderapp.NewService(log, orderRepo, productRepo, clientRepo, stockSvc, publisher)

	r := chi.NewRouter()
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()
		store := idempotency.NewStore(rdb, 24*time.Hour)
		r.Use(idempotency.Middleware(store, log))
	}
	cataloghttp.NewHandler(log, catalogSvc).Register(r)
	clienthttp.NewHandler(log, clientSvc).Register(r)
	orderhttp.NewHandler(log, orderSvc).Register(r)

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("comptoir shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
