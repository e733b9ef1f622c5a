//go:build wireinject
// +build wireinject

package di

import (
	"VibraPulse/pkg/config"
	"VibraPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideRedisClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideSensorRegistry,
		ProvideReadingStore,
		ProvideReadingSource,
		ProvideResultPublisher,

		// Use cases
		ProvideAnalyzer,
		ProvideResultProcessor,
		ProvideReadingsHandler,
		ProvideJobQueue,

		// HTTP API
		ProvideRouter,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
