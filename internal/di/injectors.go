//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"schultafel/internal"
	"schultafel/internal/controllers"
	"schultafel/internal/journal"
	"schultafel/internal/providers"
	"schultafel/internal/services"
	"schultafel/internal/snapshot"
	"schultafel/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		journal.NewClient,
		journal.NewResolver,
		services.NewTimetableService,
		snapshot.NewZstdCompressor,
		snapshot.NewFileManager,
		snapshot.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
