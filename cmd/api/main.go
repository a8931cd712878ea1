package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"actapi/docs"
	"actapi/internal/config"
	"actapi/internal/database"
	"actapi/internal/database/migration"
	"actapi/internal/document"
	handlers "actapi/internal/http/handler"
	"actapi/internal/http/middleware"
	"actapi/internal/logging"
	"actapi/internal/notify"
	appotel "actapi/internal/otel"
	"actapi/internal/repository/postgres"
	"actapi/internal/service"
	"actapi/internal/storage"
)

const (
	bodyLimit       = 4 << 20
	shutdownTimeout = 10 * time.Second
)

// @title       Acta API
// @version     1.0
// @description Renders meeting minutes (actas) to PDF and emails them.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	opts := []service.Option{
		service.WithMetrics(metrics),
		service.WithLogger(logger.Named("service")),
	}

	var db *sql.DB
	if cfg.Archive.Enabled {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			return err
		}

		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
		opts = append(opts, service.WithArchive(objStore, postgres.NewActaPostgres(db), cfg.Archive.PresignExpiry))
	}
	logger.Info("archive_configured", zap.Bool("enabled", cfg.Archive.Enabled))

	svc := service.NewActaService(
		document.NewBuilder(),
		notify.New(notify.WithLogger(logger.Named("notify"))),
		cfg.Mail,
		opts...,
	)

	app := fiber.New(fiber.Config{
		AppName:               "actapi",
		BodyLimit:             bodyLimit,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger.Named("http")))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	handlers.RegisterRoutes(app, db, svc)

	// Swagger UI with dynamic host and scheme
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Warn("http shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return app.Listen(addr)
}
