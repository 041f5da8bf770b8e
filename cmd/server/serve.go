package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"psicomapa-backend/internal/api/handlers"
	"psicomapa-backend/internal/api/routes"
	"psicomapa-backend/internal/notify"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/ratelimit"
	"psicomapa-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v79/client"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the scheduled jobs",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, cfg, err := openDatabase(false)
	if err != nil {
		return err
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tracing, err := observability.NewTracerSetup(ctx, observability.TracingConfig{
		Endpoint:   cfg.OTLPEndpoint,
		Insecure:   cfg.OTLPInsecure,
		SampleRate: cfg.OTelSample,
		Version:    handlers.Version,
	})
	if err != nil {
		logrus.WithError(err).Warn("Tracing disabled")
	}
	metrics := observability.NewMetrics()

	limiter, redisClient, err := ratelimit.New(ctx, cfg.RedisURL, cfg.PublicRateLimitPerMinute)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, using in-memory rate limiting")
	}

	events := notify.NewPublisher(notify.DispatcherConfig{
		URL:       cfg.N8NWebhookURL,
		Secret:    cfg.N8NWebhookSecret,
		QueueSize: cfg.N8NQueueSize,
		Observe:   metrics.ObserveEvent,
	})

	infra := &routes.Infrastructure{
		Metrics: metrics,
		Tracer:  tracing.Tracer(),
		Limiter: limiter,
		Mailer: notify.NewMailer(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			TLS:      cfg.SMTPTLS,
		}),
		Events:       events,
		HealthChecks: map[string]handlers.DependencyCheck{},
	}
	if cfg.StripeSecretKey != "" {
		infra.Checkout = client.New(cfg.StripeSecretKey, nil).CheckoutSessions
	} else {
		logrus.Warn("STRIPE_SECRET_KEY not set, checkout is disabled")
	}
	if redisClient != nil {
		defer redisClient.Close()
		infra.HealthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	services, err := routes.NewServices(db, cfg, infra)
	if err != nil {
		return err
	}

	jobs, err := scheduler.New(services.Assessments, metrics, scheduler.Config{
		CloseExpired:    cfg.CronCloseExpired,
		ClosingReminder: cfg.CronClosingReminder,
	})
	if err != nil {
		return err
	}
	jobs.Start()

	// Initialize router
	router := routes.SetupRoutes(db, cfg, infra, services)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		logrus.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := jobs.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Scheduler did not stop in time")
	}
	if err := events.Close(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Event queue not drained")
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Tracer shutdown failed")
	}
	return nil
}
