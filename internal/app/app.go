// Package app wires configuration, clients, domain services and the HTTP
// surface into a running service.
package app

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/controller/rest"
	"StorefrontPayments/internal/controller/rest/handlers"
	"StorefrontPayments/internal/domain/checkout"
	"StorefrontPayments/internal/external/commerce"
	"StorefrontPayments/internal/external/kafka"
	"StorefrontPayments/internal/external/opensearch"
	"StorefrontPayments/internal/external/processor"
	"StorefrontPayments/internal/repo/eventsink"
	"StorefrontPayments/internal/webhook"
	"StorefrontPayments/pkg/health"
	"StorefrontPayments/pkg/logger"
	"StorefrontPayments/pkg/metrics"
	"StorefrontPayments/pkg/postgres"

	"github.com/gin-gonic/gin"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	// External clients
	commerceClient := commerce.New(cfg.CommerceBaseURL, cfg.HTTPCommerceClientTimeout)
	processorClient := processor.New(cfg.ProcessorBaseURL, cfg.HTTPProcessorClientTimeout)
	sites := newSiteResolver(cfg)

	// Checkout core
	preparer := checkout.NewContextPreparer(commerceClient, commerceClient, sites)
	compensator := checkout.NewCompensator(processorClient)
	orchestrator := checkout.NewOrchestrator(commerceClient, processorClient, compensator)

	// Webhook pipeline
	notificationSink := eventsink.NewPgNotificationSink(pool)
	var auditSink webhook.NotificationSink
	if len(cfg.OpensearchUrls) > 0 {
		osSink, err := opensearch.NewNotificationSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexNotifications)
		if err != nil {
			l.Error("OpenSearch sink unavailable, continuing without audit index: error=%v", err)
		} else {
			auditSink = osSink
		}
	}
	dispatcher := webhook.NewDispatcher(commerceClient)
	syncProcessor := webhook.NewSyncProcessor(notificationSink, auditSink, dispatcher)
	authenticator := webhook.NewAuthenticator()

	var webhookProcessor webhook.Processor = syncProcessor
	if cfg.WebhookMode == "kafka" {
		l.Info("Webhook mode: kafka")
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer publisher.Close()
		webhookProcessor = webhook.NewAsyncProcessor(publisher)
		StartWorkers(ctx, l, cfg, syncProcessor)
	}

	// HTTP surface
	paymentHandler := handlers.NewPaymentHandler(preparer, orchestrator)
	giftCardHandler := handlers.NewGiftCardHandler(preparer, orchestrator)
	orderHandler := handlers.NewOrderHandler(preparer, orchestrator)
	webhookHandler := handlers.NewWebhookHandler(sites, authenticator, webhookProcessor)

	router := rest.NewRouter(paymentHandler, giftCardHandler, orderHandler, webhookHandler)
	router.SetUp(engine)

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	if cfg.WebhookMode == "kafka" {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(checkers...)
	engine.GET("/health", health.ReadinessHandler(healthRegistry, 5*time.Second))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
