package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tracegate-api/internal/config"
	"tracegate-api/internal/llm"
	"tracegate-api/internal/middleware"
	"tracegate-api/internal/pool"
	"tracegate-api/internal/routers"
	"tracegate-api/internal/shared"
	"tracegate-api/internal/trace"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/manifold-inc/manifold-sdk/lib/eflag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Flags / ENV Variables
	_ = godotenv.Load()

	listenAddr := flag.String("listen-addr", config.DefaultListenAddr, "Address to listen on")
	providerAPIKey := flag.String("openai-api-key", "", "OpenRouter-compatible provider API key")
	providerBaseURL := flag.String("openai-base-url", config.DefaultProviderBaseURL, "Provider base URL")
	defaultModel := flag.String("default-model", config.DefaultModel, "Default chat model")
	providerTimeout := flag.Duration("provider-timeout", config.DefaultProviderTimeout, "Outbound provider call timeout")
	poolSize := flag.Int("worker-pool-size", config.DefaultWorkerPoolSize, "Max concurrent provider calls")
	langfusePublicKey := flag.String("langfuse-public-key", "", "Langfuse public API key")
	langfuseSecretKey := flag.String("langfuse-secret-key", "", "Langfuse secret API key")
	langfuseHost := flag.String("langfuse-host", config.DefaultLangfuseHost, "Langfuse host URL")
	metricsAPIKey := flag.String("metrics-api-key", "", "Metrics api key")
	debug := flag.Bool("debug", false, "Debug enabled")

	err := eflag.SetFlagsFromEnvironment()
	if err != nil {
		panic(err)
	}
	flag.Parse()

	cfg := &config.Config{
		ListenAddr:        *listenAddr,
		ProviderAPIKey:    *providerAPIKey,
		ProviderBaseURL:   *providerBaseURL,
		DefaultModel:      *defaultModel,
		ProviderTimeout:   *providerTimeout,
		WorkerPoolSize:    *poolSize,
		LangfusePublicKey: *langfusePublicKey,
		LangfuseSecretKey: *langfuseSecretKey,
		LangfuseHost:      *langfuseHost,
		MetricsAPIKey:     *metricsAPIKey,
		Debug:             *debug,
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %s", err))
	}

	var logger *zap.Logger
	if !*debug {
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed init logger")
		}
	}
	if *debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic("Failed init logger")
		}
	}
	log := logger.Sugar()

	var exporter trace.Exporter
	if cfg.TracingEnabled() {
		exporter = trace.NewLangfuseExporter(cfg.LangfuseHost, cfg.LangfusePublicKey, cfg.LangfuseSecretKey)
		log.Infow("Trace export enabled", "host", cfg.LangfuseHost)
	} else {
		log.Warn("Trace export disabled, spans will not be recorded")
	}
	recorder := trace.NewRecorder(exporter, log)

	svc := llm.NewService(cfg, recorder, log)
	workers := pool.New(cfg.WorkerPoolSize, log)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(recorder, log)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(200, "")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.MetricsAPIKey == "" {
				return next(c)
			}
			apiKey, err := shared.ExtractAPIKey(c)
			if err != nil {
				return c.String(401, "Missing or invalid API key")
			}
			if apiKey != cfg.MetricsAPIKey {
				return c.String(401, "Unauthorized API key")
			}
			return next(c)
		}
	})
	base := e.Group("")
	base.Use(emw.CORS())
	base.Use(middleware.NewRecoverMiddleware(log))
	base.Use(middleware.NewTrackMiddleware(log))

	// Register routes
	routers.RegisterChatRoutes(base, svc, workers, log)

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Wait for interrupt signal to gracefully shut down the server.
	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shared.DefaultShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
