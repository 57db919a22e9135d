// cmd/onboarding-worker/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appaws "onboarding-workers/internal/common/aws"
	"onboarding-workers/internal/common/camunda"
	"onboarding-workers/internal/common/config"
	"onboarding-workers/internal/common/database"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/observability"
	activateaccount "onboarding-workers/internal/workers/onboarding/activate-account"
	classifydocument "onboarding-workers/internal/workers/onboarding/classify-document"
	compileprofile "onboarding-workers/internal/workers/onboarding/compile-profile"
	extractfields "onboarding-workers/internal/workers/onboarding/extract-fields"
	indexdocuments "onboarding-workers/internal/workers/onboarding/index-documents"
	notifycustomer "onboarding-workers/internal/workers/onboarding/notify-customer"
	processbatch "onboarding-workers/internal/workers/onboarding/process-batch"
	provisionaccount "onboarding-workers/internal/workers/onboarding/provision-account"
	validatedocument "onboarding-workers/internal/workers/onboarding/validate-document"
	validateprofile "onboarding-workers/internal/workers/onboarding/validate-profile"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

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
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting onboarding worker...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel metrics disabled", zap.Error(err))
	}
	defer obs.Shutdown(context.Background())

	ctx := context.Background()
	checks := map[string]readinessCheck{}

	// --- Zeebe ---
	zeebe, err := camunda.Connect(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: cfg.Camunda.Plaintext,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe connection failed", zap.Error(err))
	}
	checks["zeebe"] = zeebe.HealthCheck
	zapLog.Info("Zeebe client connected successfully")

	// --- Account store ---
	var store provisionaccount.Store
	switch cfg.Accounts.Store {
	case "postgres":
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

		pgStore := provisionaccount.NewPostgresStore(pg.DB, cfg.Accounts.Table)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			zapLog.Fatal("account schema setup failed", zap.Error(err))
		}
		store = pgStore
		checks["postgres"] = pg.Ping
		zapLog.Info("PostgreSQL connected successfully", zap.String("table", cfg.Accounts.Table))
	default:
		store = provisionaccount.NewMemoryStore()
		zapLog.Warn("using in-memory account store")
	}

	// --- Extraction cache ---
	var cache *redis.Client
	if cfg.Extraction.CacheTTL > 0 {
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rc.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rc.Close()
		cache = rc.Client
		checks["redis"] = rc.Ping
		zapLog.Info("Redis connected successfully")
	}

	// --- Document index ---
	var indexer *indexdocuments.Indexer
	if cfg.Database.Elasticsearch.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		indexer = indexdocuments.NewIndexer(esClient.Client, cfg.Database.Elasticsearch.DocumentIndex, log)
		checks["elasticsearch"] = esClient.Ping
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Notifications ---
	var sesAPI appaws.SESAPI
	var snsAPI appaws.SNSAPI
	awsCfg := cfg.Notifications.AWS
	if awsCfg.SES.Enabled || awsCfg.SNS.Enabled {
		sdkCfg, err := appaws.LoadConfig(ctx, awsCfg.Region)
		if err != nil {
			zapLog.Fatal("aws config load failed", zap.Error(err))
		}
		if awsCfg.SES.Enabled {
			sesAPI = appaws.NewSESClient(sdkCfg)
		}
		if awsCfg.SNS.Enabled {
			snsAPI = appaws.NewSNSClient(sdkCfg)
		}
	}
	notifyCfg := notifycustomer.LoadConfig(cfg.Notifications)
	notifier := notifycustomer.NewNotifier(notifyCfg, sesAPI, snsAPI, log)

	// --- Pipeline components ---
	extractCfg := extractfields.LoadConfig(cfg.Extraction)
	extractor := extractfields.NewExtractor(extractCfg, extractfields.NewHTTPExtractionService(extractCfg), cache, log)

	compileCfg := compileprofile.LoadConfig(cfg.Onboarding.ContactPlaceholders)
	compiler := compileprofile.NewCompiler(compileCfg.Placeholders)

	provisionCfg := provisionaccount.LoadConfig(cfg.Onboarding)
	provisioner := provisionaccount.NewProvisioner(store, provisionCfg.MaxAttempts, log)

	var opts []processbatch.Option
	if cfg.Onboarding.IndexDocuments && indexer != nil {
		opts = append(opts, processbatch.WithIndexer(indexer))
	}
	if cfg.Onboarding.Notify {
		opts = append(opts, processbatch.WithNotifier(notifier))
	}
	orchestrator := processbatch.NewOrchestrator(extractor, compiler, provisioner, log, opts...)

	// --- Workers ---
	registrar := camunda.NewRegistrar(zeebe.GetClient(), obs, log)
	workerCfg := func(taskType string) config.WorkerConfig { return config.GetWorkerConfig(cfg, taskType) }

	registrar.Register(classifydocument.TaskType, workerCfg(classifydocument.TaskType),
		classifydocument.NewHandler(classifydocument.LoadConfig(), log).Handle)
	registrar.Register(extractfields.TaskType, workerCfg(extractfields.TaskType),
		extractfields.NewHandler(extractCfg, extractor, log).Handle)
	registrar.Register(validatedocument.TaskType, workerCfg(validatedocument.TaskType),
		validatedocument.NewHandler(validatedocument.LoadConfig(), log).Handle)
	registrar.Register(compileprofile.TaskType, workerCfg(compileprofile.TaskType),
		compileprofile.NewHandler(compileCfg, log).Handle)
	registrar.Register(validateprofile.TaskType, workerCfg(validateprofile.TaskType),
		validateprofile.NewHandler(validateprofile.LoadConfig(), log).Handle)
	registrar.Register(provisionaccount.TaskType, workerCfg(provisionaccount.TaskType),
		provisionaccount.NewHandler(provisionCfg, provisioner, log).Handle)
	registrar.Register(activateaccount.TaskType, workerCfg(activateaccount.TaskType),
		activateaccount.NewHandler(activateaccount.LoadConfig(), provisioner, log).Handle)
	registrar.Register(notifycustomer.TaskType, workerCfg(notifycustomer.TaskType),
		notifycustomer.NewHandler(notifyCfg, notifier, log).Handle)
	if indexer != nil {
		registrar.Register(indexdocuments.TaskType, workerCfg(indexdocuments.TaskType),
			indexdocuments.NewHandler(indexdocuments.LoadConfig(cfg.Database.Elasticsearch), indexer, log).Handle)
	}

	batchHandler := processbatch.NewHandler(processbatch.LoadConfig(cfg.Onboarding), orchestrator, log)
	registrar.Register(processbatch.TaskType, workerCfg(processbatch.TaskType), batchHandler.Handle)
	registrar.Register(processbatch.ScanTaskType, workerCfg(processbatch.ScanTaskType), batchHandler.HandleScan)

	zapLog.Info("Workers registered", zap.Int("count", registrar.Count()))

	// --- Health & Metrics Server ---
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           newOpsRouter(checks, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	registrar.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Onboarding worker stopped gracefully")
}
