package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rahack95/OSSRH-63090/cache"
	"github.com/rahack95/OSSRH-63090/config"
	"github.com/rahack95/OSSRH-63090/internal/webservices/convert"
	"github.com/rahack95/OSSRH-63090/logger"
	"github.com/rahack95/OSSRH-63090/metrics"
	"github.com/rahack95/OSSRH-63090/router"
	"github.com/rahack95/OSSRH-63090/service"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/spf13/pflag"
)

const appName = "nepaliword"

func main() {
	configSource := pflag.String("config-source", "file", "The configuration system to use (file or rigel)")
	configFile := pflag.String("config-file", "./config.json", "The path to the JSON or YAML configuration file")
	etcdEndpoints := pflag.String("etcd-endpoints", "localhost:2379", "Comma separated etcd endpoints used by rigel")
	configName := pflag.String("config-name", "dev", "The name of the rigel configuration")
	requestTimeout := pflag.Duration("request-timeout", router.DefaultRequestTimeout, "Upper bound on the handling time of one request")
	pflag.Parse()

	if err := run(*configSource, *configFile, *etcdEndpoints, *configName, *requestTimeout); err != nil {
		log.Fatal(err)
	}
}

// run serves until the process is signalled or the listener fails. Resources it
// opens are released before it returns.
func run(configSource, configFile, etcdEndpoints, configName string, requestTimeout time.Duration) error {
	var appConfig config.AppConfig
	var configSystem config.Config
	switch configSource {
	case "file":
		configSystem = &config.File{ConfigFilePath: configFile}
	case "rigel":
		rigelClient, err := config.NewRigelClient(etcdEndpoints, configName)
		if err != nil {
			return fmt.Errorf("connecting to rigel: %w", err)
		}
		configSystem = &config.Rigel{Client: rigelClient}
	default:
		return fmt.Errorf("unknown configuration system: %s", configSource)
	}
	if err := config.Load(configSystem, &appConfig); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig.ApplyDefaults()

	l := logger.LoadLogger(appName, os.Stdout)
	if appConfig.LogFile != "" {
		fileLogger, closer, err := logger.LoadLoggerFromFile(appName, appConfig.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer closer.Close()
		l = fileLogger
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewPrometheusMetrics(registry).WithLogger(l)

	var resultCache cache.Cache = cache.Noop{}
	if appConfig.RedisAddr != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		redisCache, err := cache.Dial(dialCtx, appConfig.RedisAddr, appConfig.CacheTTL())
		cancel()
		if err != nil {
			// Conversions do not need the cache; run without it.
			l.Warn().LogActivity("redis unavailable, caching disabled", map[string]any{"addr": appConfig.RedisAddr, "error": err.Error()})
		} else {
			defer redisCache.Close()
			resultCache = redisCache
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(l, requestTimeout)

	s := service.NewService(r).
		WithConfig(configSystem).
		WithAppConfig(appConfig).
		WithLogger(l).
		WithMetrics(m).
		WithCache(resultCache)

	if err := convert.RegisterHandlers(s); err != nil {
		return fmt.Errorf("registering handlers: %w", err)
	}

	if appConfig.MetricsPort == 0 {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	} else {
		go func() {
			if err := m.StartMetricsServer(ctx, strconv.Itoa(appConfig.MetricsPort)); err != nil {
				l.Error(err).LogActivity("metrics server stopped", nil)
			}
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", appConfig.AppServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error(err).LogActivity("server shutdown failed", nil)
		}
	}()

	l.WithModule("server").WithStatus(logharbour.Success).Info().LogActivity("server starting", map[string]any{
		"port":           appConfig.AppServerPort,
		"metrics_port":   appConfig.MetricsPort,
		"legacy_spacing": appConfig.LegacySpacing,
		"max_batch_size": appConfig.MaxBatchSize,
		"cache":          appConfig.RedisAddr != "",
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error(err).LogActivity("server failed", nil)
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
