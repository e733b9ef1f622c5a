package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"VibraPulse/internal/domain/repository"
	"VibraPulse/internal/handler/api"
	internalrepo "VibraPulse/internal/repository"
	pkgcache "VibraPulse/pkg/cache"
	icache "VibraPulse/internal/service/cache"
	"VibraPulse/internal/usecase"
	pkgch "VibraPulse/pkg/clickhouse"
	"VibraPulse/pkg/config"
	pkgkafka "VibraPulse/pkg/kafka"
	applogger "VibraPulse/pkg/logger"
	"VibraPulse/pkg/metrics"
	"VibraPulse/pkg/queue"
	"VibraPulse/pkg/server"

	"github.com/redis/go-redis/v9"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS vibrapulse",
		"CREATE TABLE IF NOT EXISTS vibrapulse.raw_samples (" +
			"sensor_id String, ts DateTime64(3), seq UInt32, " +
			"h Int32, v Int32, a Int32, rate Float64, g_range UInt8" +
			") ENGINE=MergeTree ORDER BY (sensor_id, ts, seq)",
	}); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideRedisClient creates the shared Redis client.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSensorRegistry creates the Redis-backed sensor configuration
// registry, wrapped in a layered memory+Redis read-through cache when Redis
// is reachable.
func ProvideSensorRegistry(cli *redis.Client, cfg *config.Config) repository.SensorRegistry {
	reg := internalrepo.NewRedisSensorRegistry(cli, "vibrapulse")

	host, port := splitHostPort(cfg.Redis.Addr)
	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Redis.Password),
		pkgcache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return reg
	}
	layered := pkgcache.NewLayeredCache(rc)
	return internalrepo.NewCachedSensorRegistry(reg, layered, 30*time.Second)
}

func splitHostPort(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "localhost", 6379
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 6379
	}
	return host, port
}

// ProvideReadingStore creates the ClickHouse raw sample store.
func ProvideReadingStore(chClient *pkgch.Client, cfg *config.Config, l *applogger.Logger) repository.ReadingStore {
	table := cfg.Readings.Table
	if table == "" {
		table = "raw_samples"
	}
	store := internalrepo.NewClickHouseReadingStore(chClient, cfg.ClickHouse.Database+"."+table)
	store.SetLogger(l)
	return store
}

// ProvideReadingSource selects where on-demand analysis reads batches from:
// the ClickHouse store, or a remote DAQ gateway.
func ProvideReadingSource(cfg *config.Config, store repository.ReadingStore) repository.ReadingSource {
	if cfg.Readings.Source == "daq" {
		return internalrepo.NewRemoteReadingSource(cfg.DAQ.BaseURL, cfg.DAQ.Timeout)
	}
	return store
}

// ProvideResultPublisher creates the Kafka analysis result publisher.
func ProvideResultPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.ResultPublisher {
	return internalrepo.NewKafkaResultPublisher(producer, cfg.Kafka.ResultsTopic)
}

// ProvideAnalyzer creates the analysis pipeline use case.
func ProvideAnalyzer(
	source repository.ReadingSource,
	sensors repository.SensorRegistry,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(source, sensors, metrics, usecase.AnalyzerConfig{
		TopPeaks:        cfg.Analysis.TopPeaks,
		NyquistTruncate: cfg.Analysis.NyquistTruncate,
		WarnThreshold:   cfg.Analysis.WarnThreshold,
		CritThreshold:   cfg.Analysis.CritThreshold,
		DefaultSamples:  cfg.Readings.DefaultSamples,
	})
}

// ProvideResultProcessor creates the result processor use case.
func ProvideResultProcessor(pub repository.ResultPublisher, metrics repository.Metrics) *usecase.ResultProcessor {
	return usecase.NewResultProcessor(pub, metrics)
}

// ProvideReadingsHandler registers the handler for the raw readings topic.
func ProvideReadingsHandler(
	store repository.ReadingStore,
	analyzer *usecase.Analyzer,
	proc *usecase.ResultProcessor,
	sensors repository.SensorRegistry,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.ReadingsHandler {
	return usecase.NewReadingsHandler(cfg.Kafka.ReadingsTopic, store, analyzer, proc, sensors, metrics)
}

// ProvideJobQueue creates the Redis-backed background job queue with the
// re-analysis job registered. Returns nil when the queue is disabled.
func ProvideJobQueue(
	l *applogger.Logger,
	cli *redis.Client,
	analyzer *usecase.Analyzer,
	proc *usecase.ResultProcessor,
	cfg *config.Config,
) *queue.RedisQueue {
	if !cfg.Queue.Enabled {
		return nil
	}
	workers := cfg.Queue.Concurrency
	if workers <= 0 {
		workers = 2
	}
	q := queue.NewRedisQueue(l, &queue.QueueConfig{
		Workers:    workers,
		QueueSize:  256,
		RetryLimit: 3,
		RetryDelay: 5 * time.Second,
	}, cli, queue.ModeProducerConsumer)
	q.RegisterJob(usecase.NewAnalysisJob(analyzer, proc))
	q.RegisterJob(usecase.NewErrorLogSinkJob(l))

	// Route aggregated error logs through the queue so repeated failures
	// surface as one summarized line instead of a flood.
	l.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   30 * time.Second,
		CountThreshold: 100,
		Topic:          usecase.ErrorLogSinkType,
		Publisher:      q,
	})
	return q
}

// ProvideRouter assembles the HTTP API handlers.
func ProvideRouter(
	l *applogger.Logger,
	analyzer *usecase.Analyzer,
	sensors repository.SensorRegistry,
	q *queue.RedisQueue,
	cfg *config.Config,
) *api.Router {
	ah := api.NewAnalysisHandler(l, analyzer)
	var respCache icache.BytesCache
	if cfg.Redis.Enabled {
		respCache = icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		respCache = icache.NewTTLCache()
	}
	ah.SetCache(respCache, cfg.Analysis.CacheTTL)
	if q != nil {
		ah.SetJobQueue(q)
	}
	return api.NewRouter(ah, api.NewSensorsHandler(l, sensors))
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	consumer *pkgkafka.Consumer,
	kh *usecase.ReadingsHandler,
	chClient *pkgch.Client,
	router *api.Router,
	q *queue.RedisQueue,
	proc *usecase.ResultProcessor,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(pkgkafka.NoopHook{})
	}
	app := server.New(cfg, consumer, kh, chClient)
	app.SetHTTPHandler(router)
	if q != nil {
		app.SetJobQueue(q)
	}
	app.ResultProc = proc
	return app
}
