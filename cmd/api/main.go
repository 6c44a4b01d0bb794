// @title Quiz Form API
// @version 1.0
// @description Event-driven quiz creation form: change, blur and submit events over form sessions.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

//go:generate swag init -g main.go -d ./,../../internal/handler -o ./docs --parseInternal

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-form/internal/adapter"
	"quiz-form/internal/cache"
	"quiz-form/internal/config"
	"quiz-form/internal/domain"
	"quiz-form/internal/handler"
	"quiz-form/internal/logger"
	"quiz-form/internal/metrics"
	"quiz-form/internal/middleware"
	"quiz-form/internal/render"
	"quiz-form/internal/schema"
	"quiz-form/internal/service"

	_ "quiz-form/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Form schema and rule engine
	formSchema, err := schema.LoadFile(cfg.Form.SchemaFile)
	if err != nil {
		appLogger.Fatal("Failed to load form schema", zap.String("file", cfg.Form.SchemaFile), zap.Error(err))
	}
	validator := schema.NewValidator(formSchema)
	mode, err := domain.ParseDisplayMode(cfg.Form.ErrorDisplay)
	if err != nil {
		appLogger.Fatal("Invalid error display mode", zap.Error(err))
	}

	// Session cache
	var sessionCache domain.Cache
	var closeCache func() error
	switch cfg.Form.Store {
	case "redis":
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		sessionCache = adapter.NewRedisCacheAdapter(redisClient)
		closeCache = redisClient.Close
	default:
		appLogger.Info("Using in-memory form session store")
		sessionCache = adapter.NewMemoryCacheAdapter()
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
	}

	// Initialize services
	store := service.NewFormSessionStore(sessionCache, cfg.Form.SessionTTL)
	submitter := service.NewDelayedSubmitter(cfg.Form.SubmitDelay)
	formService := service.NewFormService(store, validator, submitter, service.LoggingSink{},
		service.WithDisplayMode(mode),
		service.WithRecorder(recorder),
	)
	appLogger.Info("FormService initialized",
		zap.String("mode", string(mode)),
		zap.Duration("submit_delay", cfg.Form.SubmitDelay),
		zap.Duration("session_ttl", cfg.Form.SessionTTL),
	)

	renderer, err := render.New()
	if err != nil {
		appLogger.Fatal("Failed to load page templates", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger(recorder))
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	handler.RegisterRoutes(app, handler.Handlers{
		Form:   handler.NewFormHandler(formService),
		Page:   handler.NewPageHandler(formService, renderer, cfg.Form.SubmitDelay),
		Health: handler.NewHealthHandler(sessionCache),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		// Pending submissions complete before the cache goes away.
		if err := submitter.Close(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if closeCache != nil {
			if err := closeCache(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
