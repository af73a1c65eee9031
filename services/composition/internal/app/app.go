// Package app wires the composition service together and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/clients"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/health"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/httpclient"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/kafka"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/tracing"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/config"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/event"
	handler "github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/handler/http"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/payment"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/service"
)

// App holds the composition service's long-lived components.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	httpServer     *http.Server
	producer       *kafka.Producer
	tracerShutdown func(context.Context) error
}

// NewApp initializes all dependencies. Each downstream service gets its own
// circuit breaker so one degraded dependency does not trip the others.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "composition",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	customerClient := clients.NewCustomerClient(
		breakerClient("customer", logger), cfg.APIKey, cfg.CustomerServiceURL)
	catalogClient := clients.NewCatalogClient(
		breakerClient("catalog", logger), cfg.APIKey, cfg.CatalogServiceURL)
	salesClient := clients.NewSalesClient(
		breakerClient("sales", logger), cfg.APIKey, cfg.SalesServiceURL)

	seed := cfg.PaymentSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	processor := payment.NewSimulatedProcessor(seed, logger)

	var producer *kafka.Producer
	var publisher *event.Publisher
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		publisher = event.NewPublisher(producer, logger)
		logger.Info("kafka producer enabled", slog.Any("brokers", cfg.KafkaBrokers))
	}

	svc := service.NewCompositionService(
		customerClient, catalogClient, salesClient, processor, publisher, logger)

	healthHandler := health.NewHandler()
	if producer != nil {
		healthHandler.Register("kafka", func(ctx context.Context) error {
			return producer.Ping(ctx)
		})
	}

	router := handler.NewRouter(svc, healthHandler, logger, cfg.APIKey)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		httpServer:     httpServer,
		producer:       producer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// breakerClient builds the resilient client for one downstream service.
func breakerClient(name string, logger *slog.Logger) *httpclient.CircuitBreakerClient {
	return httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig(name),
		logger,
	)
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown drains in-flight requests, flushes spans, then closes the
// producer.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down composition service")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			errs = append(errs, err)
		}
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
