package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/potshare-backend/internal/adapter/events"
	grpcadapter "github.com/simaogato/potshare-backend/internal/adapter/grpc"
	potsharev1 "github.com/simaogato/potshare-backend/internal/adapter/grpc/potshare/v1"
	"github.com/simaogato/potshare-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/potshare-backend/internal/config"
	"github.com/simaogato/potshare-backend/internal/domain"
	"github.com/simaogato/potshare-backend/internal/usecase/dashboard"
	"github.com/simaogato/potshare-backend/internal/usecase/expense"
	"github.com/simaogato/potshare-backend/internal/usecase/pot"
	"github.com/simaogato/potshare-backend/internal/usecase/seeder"
	"github.com/simaogato/potshare-backend/internal/usecase/template"
	"github.com/simaogato/potshare-backend/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Setup Database
	// Give Postgres a moment to come up when started alongside it
	time.Sleep(cfg.DBStartupDelay)

	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrations applied")

	// 2. Initialize Repositories (Postgres)
	potRepo := postgres.NewPotRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	currencyRepo := postgres.NewCurrencyRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)

	if err := seeder.NewCurrencySeeder(currencyRepo).Seed(ctx); err != nil {
		return err
	}
	logger.Info("Currencies seeded successfully")

	// 3. Event publisher, a no-op when no broker is configured
	var publisher domain.EventPublisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(ctx, cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		logger.Info("Publishing events", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("Event publishing disabled - no AMQP_URL provided")
	}

	// 4. Initialize Services (Use Cases)
	potService := pot.NewPotService(potRepo, expenseRepo, currencyRepo)
	expenseService := expense.NewExpenseService(potRepo, expenseRepo, currencyRepo, publisher, logger)
	dashboardService := dashboard.NewDashboardService(potRepo, expenseRepo, currencyRepo)
	templateService := template.NewTemplateService(templateRepo, currencyRepo, potService)

	// 5. gRPC server with logging, metrics and auth interceptors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := grpcadapter.NewMetrics(registry)

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.MetricsInterceptor(metrics),
			grpcadapter.AuthInterceptor([]byte(cfg.JWTSecret)),
		),
	)
	potsharev1.RegisterPotShareServiceServer(grpcServer, grpcadapter.NewServer(potService, expenseService, dashboardService, templateService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	// 6. Metrics and health endpoints
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	httpServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", "addr", cfg.GRPCAddr)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info("Metrics server listening", "addr", cfg.MetricsAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown on signal or when either server fails
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
