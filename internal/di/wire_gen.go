// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"VibraPulse/pkg/config"
	"VibraPulse/pkg/server"
)

// Injectors from wire.go:

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	consumer, err := ProvideKafkaConsumer(cfg)
	if err != nil {
		return nil, err
	}
	client, err := ProvideClickHouseClient(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}
	readingStore := ProvideReadingStore(client, cfg, logger)
	readingSource := ProvideReadingSource(cfg, readingStore)
	redisClient := ProvideRedisClient(cfg)
	sensorRegistry := ProvideSensorRegistry(redisClient, cfg)
	metrics := ProvideMetrics()
	analyzer := ProvideAnalyzer(readingSource, sensorRegistry, metrics, cfg)
	producer, err := ProvideKafkaProducer(cfg)
	if err != nil {
		return nil, err
	}
	resultPublisher := ProvideResultPublisher(producer, cfg)
	resultProcessor := ProvideResultProcessor(resultPublisher, metrics)
	readingsHandler := ProvideReadingsHandler(readingStore, analyzer, resultProcessor, sensorRegistry, metrics, cfg)
	redisQueue := ProvideJobQueue(logger, redisClient, analyzer, resultProcessor, cfg)
	router := ProvideRouter(logger, analyzer, sensorRegistry, redisQueue, cfg)
	app := ProvideApp(cfg, consumer, readingsHandler, client, router, redisQueue, resultProcessor)
	return app, nil
}
