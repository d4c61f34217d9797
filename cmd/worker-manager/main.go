// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/camunda"
	"scholarship-workers/internal/common/config"
	"scholarship-workers/internal/common/database"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/observability"
	"scholarship-workers/internal/matching"
	"scholarship-workers/internal/students"

	ls "scholarship-workers/internal/workers/catalog/lookup-scholarship"
	ss "scholarship-workers/internal/workers/catalog/search-scholarships"
	ea "scholarship-workers/internal/workers/matching/explain-all-scholarships"
	ee "scholarship-workers/internal/workers/matching/explain-eligibility"
	fm "scholarship-workers/internal/workers/matching/find-scholarship-matches"
	ni "scholarship-workers/internal/workers/normalization/normalize-income"
	np "scholarship-workers/internal/workers/normalization/normalize-profile"
	ns "scholarship-workers/internal/workers/normalization/normalize-score"
)

const studentCacheTTL = 10 * time.Minute

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger now that the configured level and format are known
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Camunda Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		if err != nil {
			return err
		}
		return camundaClient.HealthCheck(ctx)
	}, 10, 2*time.Second, zapLog, "Camunda client initialization")

	if err != nil {
		zapLog.Fatal("camunda client failed after retries", zap.Error(err))
	}
	defer camundaClient.Close()
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Camunda client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry (only when search is backed by it) ---
	var esClient *database.ElasticsearchClient
	if cfg.Matching.SearchSource == "elasticsearch" {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Load Scholarship Catalog ---
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err), zap.String("path", cfg.Catalog.Path))
		}
	} else {
		cat = catalog.Default()
	}
	zapLog.Info("Scholarship catalog loaded",
		zap.String("version", cat.Version()),
		zap.Int("scholarships", cat.Len()),
	)

	// Seed the search index so search-scholarships can serve from Elasticsearch
	if esClient != nil {
		for _, s := range cat.List("", 0) {
			if err := esClient.IndexDocument(ctx, cfg.Database.Elasticsearch.Index, s.ID, s); err != nil {
				zapLog.Warn("failed to index scholarship", zap.String("id", s.ID), zap.Error(err))
			}
		}
		zapLog.Info("Catalog indexed into Elasticsearch",
			zap.String("index", cfg.Database.Elasticsearch.Index),
			zap.Int("documents", cat.Len()),
		)
	}

	studentStore := students.NewStore(pg.DB, redis.Client, studentCacheTTL, log)
	engine := matching.NewEngine(cat)

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	registerWorker := func(taskType string, handler camunda.JobHandler) {
		wcfg := config.GetWorkerConfig(cfg, taskType)
		if !wcfg.Enabled {
			zapLog.Info("worker disabled", zap.String("taskType", taskType))
			return
		}
		w := camunda.NewWorker(
			zeebeClient,
			taskType,
			wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond,
			handler,
			obs,
			zapLog,
		)
		workers = append(workers, w)
	}

	workerTimeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	// Normalization workers
	registerWorker(ns.TaskType, ns.NewHandler(
		&ns.Config{Timeout: workerTimeout(ns.TaskType)},
		log,
	))

	registerWorker(ni.TaskType, ni.NewHandler(
		&ni.Config{Timeout: workerTimeout(ni.TaskType)},
		log,
	))

	registerWorker(np.TaskType, np.NewHandler(
		&np.Config{Timeout: workerTimeout(np.TaskType)},
		studentStore, log,
	))

	// Matching workers
	registerWorker(fm.TaskType, fm.NewHandler(
		&fm.Config{
			MinScore: cfg.Matching.MinScore,
			Timeout:  workerTimeout(fm.TaskType),
		},
		engine, studentStore, log,
	))

	registerWorker(ee.TaskType, ee.NewHandler(
		&ee.Config{Timeout: workerTimeout(ee.TaskType)},
		cat, studentStore, log,
	))

	registerWorker(ea.TaskType, ea.NewHandler(
		&ea.Config{Timeout: workerTimeout(ea.TaskType)},
		cat, studentStore, log,
	))

	// Catalog workers
	registerWorker(ls.TaskType, ls.NewHandler(
		&ls.Config{Timeout: workerTimeout(ls.TaskType)},
		cat, log,
	))

	registerWorker(ss.TaskType, ss.NewHandler(
		&ss.Config{
			Source:       cfg.Matching.SearchSource,
			Index:        cfg.Database.Elasticsearch.Index,
			DefaultLimit: 10,
			Timeout:      workerTimeout(ss.TaskType),
		},
		cat, esClient, log,
	))

	zapLog.Info("All workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	metricsAddr := cfg.Metrics.Address
	if metricsAddr == "" {
		metricsAddr = ":9090"
	}
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := pg.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", metricsAddr))
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	zapLog.Info("Worker manager stopped gracefully")
}
